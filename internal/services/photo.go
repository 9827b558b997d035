package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
	"github.com/pawsteps/pawsteps-backend/internal/platform/gcp"
)

type PhotoUpload struct {
	FileName string
	Reader   io.Reader
}

// PhotoUploadResult carries the per-file outcome of a batch upload: a public
// URL on success or the error string on failure.
type PhotoUploadResult struct {
	FileName string            `json:"file_name"`
	Asset    *types.MediaAsset `json:"asset,omitempty"`
	URL      string            `json:"url,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// PhotoService uploads photo batches. Each file is independent: one file's
// failure never rolls back siblings or blocks the rest of the batch. The
// caller decides whether to proceed with a partial attachment set.
type PhotoService interface {
	UploadPhotos(ctx context.Context, ownerType string, ownerID uuid.UUID, files []PhotoUpload) ([]PhotoUploadResult, error)
}

type photoService struct {
	db     *gorm.DB
	log    *logger.Logger
	bucket gcp.BucketService
	assets repos.MediaAssetRepo
}

func NewPhotoService(
	db *gorm.DB,
	baseLog *logger.Logger,
	bucket gcp.BucketService,
	assets repos.MediaAssetRepo,
) PhotoService {
	return &photoService{
		db:     db,
		log:    baseLog.With("service", "PhotoService"),
		bucket: bucket,
		assets: assets,
	}
}

func (s *photoService) UploadPhotos(ctx context.Context, ownerType string, ownerID uuid.UUID, files []PhotoUpload) ([]PhotoUploadResult, error) {
	if s.bucket == nil {
		return nil, fmt.Errorf("%w: photo storage not configured", apperrors.ErrStorageUnavailable)
	}
	if ownerType == "" {
		return nil, fmt.Errorf("%w: missing owner type", apperrors.ErrValidation)
	}

	dbc := dbctx.Context{Ctx: ctx}
	results := make([]PhotoUploadResult, 0, len(files))
	for _, f := range files {
		results = append(results, s.uploadOne(dbc, ownerType, ownerID, f))
	}
	return results, nil
}

func (s *photoService) uploadOne(dbc dbctx.Context, ownerType string, ownerID uuid.UUID, f PhotoUpload) PhotoUploadResult {
	res := PhotoUploadResult{FileName: f.FileName}
	if f.Reader == nil {
		res.Error = "no file content"
		return res
	}

	// The row is written before the upload so a crash mid-batch still leaves a
	// trace of the attempt. It starts as uploading and only flips to uploaded
	// once GCS has the bytes; a crash in between never leaves a row claiming
	// success without a file.
	now := time.Now().UTC()
	asset := &types.MediaAsset{
		ID:        uuid.New(),
		OwnerType: ownerType,
		FileName:  f.FileName,
		Status:    types.MediaAssetStatusUploading,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ownerID != uuid.Nil {
		asset.OwnerID = &ownerID
	}
	asset.StorageKey = fmt.Sprintf("%s/%s/%s", ownerType, asset.ID.String(), f.FileName)
	if _, err := s.assets.Create(dbc, []*types.MediaAsset{asset}); err != nil {
		s.log.Error("failed to record photo upload", "error", err, "file_name", f.FileName)
		res.Error = err.Error()
		return res
	}

	if err := s.bucket.UploadFile(dbc, gcp.BucketCategoryPhoto, asset.StorageKey, f.Reader); err != nil {
		s.log.Error("photo upload failed",
			"error", err,
			"owner_type", ownerType,
			"storage_key", asset.StorageKey,
		)
		asset.Status = types.MediaAssetStatusUploadFailed
		if dbErr := s.assets.UpdateFields(dbc, asset.ID, map[string]interface{}{
			"status": types.MediaAssetStatusUploadFailed,
		}); dbErr != nil {
			s.log.Error("failed to mark upload failed", "error", dbErr, "media_asset_id", asset.ID)
		}
		res.Error = err.Error()
		return res
	}

	asset.FileURL = s.bucket.GetPublicURL(gcp.BucketCategoryPhoto, asset.StorageKey)
	asset.Status = types.MediaAssetStatusUploaded
	if err := s.assets.UpdateFields(dbc, asset.ID, map[string]interface{}{
		"status":   types.MediaAssetStatusUploaded,
		"file_url": asset.FileURL,
	}); err != nil {
		s.log.Error("failed to record photo url", "error", err, "media_asset_id", asset.ID)
		res.Error = err.Error()
		return res
	}

	res.Asset = asset
	res.URL = asset.FileURL
	return res
}
