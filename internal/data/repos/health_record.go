package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type HealthRecordRepo interface {
	Create(dbc dbctx.Context, rows []*types.HealthRecord) ([]*types.HealthRecord, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.HealthRecord, error)
	ListByDog(dbc dbctx.Context, dogID uuid.UUID) ([]*types.HealthRecord, error)
}

type healthRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthRecordRepo(db *gorm.DB, baseLog *logger.Logger) HealthRecordRepo {
	return &healthRecordRepo{db: db, log: baseLog.With("repo", "HealthRecordRepo")}
}

func (r *healthRecordRepo) Create(dbc dbctx.Context, rows []*types.HealthRecord) ([]*types.HealthRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.HealthRecord{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *healthRecordRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.HealthRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.HealthRecord
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *healthRecordRepo) ListByDog(dbc dbctx.Context, dogID uuid.UUID) ([]*types.HealthRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.HealthRecord
	if dogID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("dog_id = ?", dogID).
		Order("recorded_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
