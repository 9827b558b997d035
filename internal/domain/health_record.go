package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HealthRecord is a vet visit or health note for a dog. Findings are
// free-form JSON shaped by the client.
type HealthRecord struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DogID uuid.UUID `gorm:"type:uuid;not null;index" json:"dog_id"`
	Dog   *Dog      `gorm:"constraint:OnDelete:CASCADE;foreignKey:DogID;references:ID" json:"dog,omitempty"`

	Kind       string         `gorm:"column:kind;type:text;not null;index" json:"kind"`
	Title      string         `gorm:"column:title;not null" json:"title"`
	Findings   datatypes.JSON `gorm:"type:jsonb;column:findings" json:"findings,omitempty"`
	PhotoURLs  datatypes.JSON `gorm:"type:jsonb;column:photo_urls" json:"photo_urls,omitempty"`
	RecordedAt time.Time      `gorm:"column:recorded_at;not null;index" json:"recorded_at"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (HealthRecord) TableName() string { return "health_records" }
