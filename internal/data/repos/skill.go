package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type SkillRepo interface {
	Create(dbc dbctx.Context, rows []*types.Skill) ([]*types.Skill, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Skill, error)
	List(dbc dbctx.Context) ([]*types.Skill, error)
	ListByCategory(dbc dbctx.Context, category string) ([]*types.Skill, error)
}

type skillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillRepo(db *gorm.DB, baseLog *logger.Logger) SkillRepo {
	return &skillRepo{db: db, log: baseLog.With("repo", "SkillRepo")}
}

func (r *skillRepo) Create(dbc dbctx.Context, rows []*types.Skill) ([]*types.Skill, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Skill{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skillRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Skill, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Skill
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *skillRepo) List(dbc dbctx.Context) ([]*types.Skill, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Skill
	if err := t.WithContext(dbc.Ctx).Order("category ASC, difficulty ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *skillRepo) ListByCategory(dbc dbctx.Context, category string) ([]*types.Skill, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Skill
	if category == "" {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("category = ?", category).
		Order("difficulty ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
