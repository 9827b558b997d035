package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Dog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"column:name;not null" json:"name"`
	Breed     string     `gorm:"column:breed" json:"breed,omitempty"`
	BirthDate *time.Time `gorm:"column:birth_date" json:"birth_date,omitempty"`
	WeightKg  float64    `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
	PhotoURL  string     `gorm:"column:photo_url" json:"photo_url,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Dog) TableName() string { return "dogs" }
