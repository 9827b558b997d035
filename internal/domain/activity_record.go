package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityRecord is a GPS-tracked walk. RoutePath holds the recorded track as
// a JSON array of {lat, lng, t} points.
type ActivityRecord struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DogID uuid.UUID `gorm:"type:uuid;not null;index" json:"dog_id"`
	Dog   *Dog      `gorm:"constraint:OnDelete:CASCADE;foreignKey:DogID;references:ID" json:"dog,omitempty"`

	DistanceMeters  float64        `gorm:"column:distance_meters" json:"distance_meters"`
	DurationMinutes int            `gorm:"column:duration_minutes" json:"duration_minutes"`
	RoutePath       datatypes.JSON `gorm:"type:jsonb;column:route_path" json:"route_path,omitempty"`
	StartedAt       time.Time      `gorm:"column:started_at;not null;index" json:"started_at"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ActivityRecord) TableName() string { return "activity_records" }
