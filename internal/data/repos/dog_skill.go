package repos

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type DogSkillRepo interface {
	Create(dbc dbctx.Context, rows []*types.DogSkill) ([]*types.DogSkill, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.DogSkill, error)
	GetByDogAndSkill(dbc dbctx.Context, dogID, skillID uuid.UUID) (*types.DogSkill, error)
	ListByDog(dbc dbctx.Context, dogID uuid.UUID) ([]*types.DogSkill, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error

	// IncrementTotalSessions bumps the monotonic session counter at the
	// storage layer so concurrent recorders never lose updates.
	IncrementTotalSessions(dbc dbctx.Context, id uuid.UUID) error

	// UpdateLevelFrom advances the proficiency level only if the stored level
	// still equals from. Returns false when the guarded write matched no row,
	// which callers surface as a concurrent modification (or a missing row).
	UpdateLevelFrom(dbc dbctx.Context, id uuid.UUID, from, to types.ProficiencyLevel) (bool, error)
}

type dogSkillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDogSkillRepo(db *gorm.DB, baseLog *logger.Logger) DogSkillRepo {
	return &dogSkillRepo{db: db, log: baseLog.With("repo", "DogSkillRepo")}
}

func (r *dogSkillRepo) Create(dbc dbctx.Context, rows []*types.DogSkill) ([]*types.DogSkill, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.DogSkill{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dogSkillRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.DogSkill, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.DogSkill
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *dogSkillRepo) GetByDogAndSkill(dbc dbctx.Context, dogID, skillID uuid.UUID) (*types.DogSkill, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if dogID == uuid.Nil || skillID == uuid.Nil {
		return nil, nil
	}
	var out []*types.DogSkill
	if err := t.WithContext(dbc.Ctx).
		Where("dog_id = ? AND skill_id = ?", dogID, skillID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *dogSkillRepo) ListByDog(dbc dbctx.Context, dogID uuid.UUID) ([]*types.DogSkill, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.DogSkill
	if dogID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("dog_id = ?", dogID).
		Order("started_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *dogSkillRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	return t.WithContext(dbc.Ctx).
		Model(&types.DogSkill{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *dogSkillRepo) IncrementTotalSessions(dbc dbctx.Context, id uuid.UUID) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	return t.WithContext(dbc.Ctx).
		Model(&types.DogSkill{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_sessions": gorm.Expr("total_sessions + ?", 1),
			"updated_at":     time.Now().UTC(),
		}).Error
}

func (r *dogSkillRepo) UpdateLevelFrom(dbc dbctx.Context, id uuid.UUID, from, to types.ProficiencyLevel) (bool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return false, nil
	}
	res := t.WithContext(dbc.Ctx).
		Model(&types.DogSkill{}).
		Where("id = ? AND proficiency_level = ?", id, from).
		Updates(map[string]interface{}{
			"proficiency_level": to,
			"updated_at":        time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
