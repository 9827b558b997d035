package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

// PracticeSessionRepo is append-only: sessions are never edited or deleted in
// normal operation.
type PracticeSessionRepo interface {
	Create(dbc dbctx.Context, rows []*types.PracticeSession) ([]*types.PracticeSession, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PracticeSession, error)
	ListByDogSkill(dbc dbctx.Context, dogSkillID uuid.UUID) ([]*types.PracticeSession, error)
	CountByDogSkill(dbc dbctx.Context, dogSkillID uuid.UUID) (int64, error)
}

type practiceSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPracticeSessionRepo(db *gorm.DB, baseLog *logger.Logger) PracticeSessionRepo {
	return &practiceSessionRepo{db: db, log: baseLog.With("repo", "PracticeSessionRepo")}
}

func (r *practiceSessionRepo) Create(dbc dbctx.Context, rows []*types.PracticeSession) ([]*types.PracticeSession, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.PracticeSession{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *practiceSessionRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PracticeSession, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.PracticeSession
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *practiceSessionRepo) ListByDogSkill(dbc dbctx.Context, dogSkillID uuid.UUID) ([]*types.PracticeSession, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PracticeSession
	if dogSkillID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("dog_skill_id = ?", dogSkillID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *practiceSessionRepo) CountByDogSkill(dbc dbctx.Context, dogSkillID uuid.UUID) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if dogSkillID == uuid.Nil {
		return 0, nil
	}
	var n int64
	if err := t.WithContext(dbc.Ctx).
		Model(&types.PracticeSession{}).
		Where("dog_skill_id = ?", dogSkillID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
