package repos

import (
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type ProficiencyRequirementRepo interface {
	GetByLevel(dbc dbctx.Context, level types.ProficiencyLevel) (*types.ProficiencyRequirement, error)
	List(dbc dbctx.Context) ([]*types.ProficiencyRequirement, error)
}

type proficiencyRequirementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProficiencyRequirementRepo(db *gorm.DB, baseLog *logger.Logger) ProficiencyRequirementRepo {
	return &proficiencyRequirementRepo{db: db, log: baseLog.With("repo", "ProficiencyRequirementRepo")}
}

func (r *proficiencyRequirementRepo) GetByLevel(dbc dbctx.Context, level types.ProficiencyLevel) (*types.ProficiencyRequirement, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if level == "" {
		return nil, nil
	}
	var out []*types.ProficiencyRequirement
	if err := t.WithContext(dbc.Ctx).
		Where("proficiency_level = ?", level).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *proficiencyRequirementRepo) List(dbc dbctx.Context) ([]*types.ProficiencyRequirement, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.ProficiencyRequirement
	if err := t.WithContext(dbc.Ctx).Order("min_sessions_required ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
