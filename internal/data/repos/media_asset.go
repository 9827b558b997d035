package repos

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type MediaAssetRepo interface {
	Create(dbc dbctx.Context, rows []*types.MediaAsset) ([]*types.MediaAsset, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	ListByOwner(dbc dbctx.Context, ownerType string, ownerID *uuid.UUID) ([]*types.MediaAsset, error)
}

type mediaAssetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMediaAssetRepo(db *gorm.DB, baseLog *logger.Logger) MediaAssetRepo {
	return &mediaAssetRepo{db: db, log: baseLog.With("repo", "MediaAssetRepo")}
}

func (r *mediaAssetRepo) Create(dbc dbctx.Context, rows []*types.MediaAsset) ([]*types.MediaAsset, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.MediaAsset{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *mediaAssetRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
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
		Model(&types.MediaAsset{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *mediaAssetRepo) ListByOwner(dbc dbctx.Context, ownerType string, ownerID *uuid.UUID) ([]*types.MediaAsset, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.MediaAsset
	if ownerType == "" {
		return out, nil
	}
	q := t.WithContext(dbc.Ctx).Where("owner_type = ?", ownerType)
	if ownerID != nil && *ownerID != uuid.Nil {
		q = q.Where("owner_id = ?", *ownerID)
	}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
