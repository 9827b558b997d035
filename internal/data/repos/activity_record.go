package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type ActivityRecordRepo interface {
	Create(dbc dbctx.Context, rows []*types.ActivityRecord) ([]*types.ActivityRecord, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ActivityRecord, error)
	ListByDog(dbc dbctx.Context, dogID uuid.UUID) ([]*types.ActivityRecord, error)
}

type activityRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityRecordRepo(db *gorm.DB, baseLog *logger.Logger) ActivityRecordRepo {
	return &activityRecordRepo{db: db, log: baseLog.With("repo", "ActivityRecordRepo")}
}

func (r *activityRecordRepo) Create(dbc dbctx.Context, rows []*types.ActivityRecord) ([]*types.ActivityRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.ActivityRecord{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *activityRecordRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ActivityRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.ActivityRecord
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *activityRecordRepo) ListByDog(dbc dbctx.Context, dogID uuid.UUID) ([]*types.ActivityRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.ActivityRecord
	if dogID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("dog_id = ?", dogID).
		Order("started_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
