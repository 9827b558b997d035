package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MediaAssetStatusUploading    = "uploading"
	MediaAssetStatusUploaded     = "uploaded"
	MediaAssetStatusUploadFailed = "upload_failed"
)

// MediaAsset is bookkeeping for one uploaded photo. Uploads are fire-and-forget
// per file: a failed file is marked upload_failed and never rolls back its
// batch siblings.
type MediaAsset struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerType string     `gorm:"column:owner_type;type:text;not null;index:idx_media_owner,priority:1" json:"owner_type"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;column:owner_id;index:idx_media_owner,priority:2" json:"owner_id,omitempty"`

	FileName   string `gorm:"column:file_name;not null" json:"file_name"`
	StorageKey string `gorm:"column:storage_key;not null" json:"storage_key"`
	FileURL    string `gorm:"column:file_url" json:"file_url,omitempty"`
	Status     string `gorm:"column:status;type:text;not null;index" json:"status"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (MediaAsset) TableName() string { return "media_assets" }
