package repos

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type DogRepo interface {
	Create(dbc dbctx.Context, rows []*types.Dog) ([]*types.Dog, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Dog, error)
	List(dbc dbctx.Context) ([]*types.Dog, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
}

type dogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDogRepo(db *gorm.DB, baseLog *logger.Logger) DogRepo {
	return &dogRepo{db: db, log: baseLog.With("repo", "DogRepo")}
}

func (r *dogRepo) Create(dbc dbctx.Context, rows []*types.Dog) ([]*types.Dog, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Dog{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dogRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Dog, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Dog
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *dogRepo) List(dbc dbctx.Context) ([]*types.Dog, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Dog
	if err := t.WithContext(dbc.Ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *dogRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
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
		Model(&types.Dog{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *dogRepo) SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).Where("id IN ?", ids).Delete(&types.Dog{}).Error
}
