package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Skill is a catalog entity: an immutable definition of a trainable behavior.
// Created by content seeding, never mutated by end users.
type Skill struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"column:name;not null;index" json:"name"`
	Category       string         `gorm:"column:category;not null;index" json:"category"`
	Difficulty     int            `gorm:"column:difficulty;not null" json:"difficulty"`
	Prerequisites  datatypes.JSON `gorm:"type:jsonb;column:prerequisites" json:"prerequisites,omitempty"`
	EstimatedWeeks int            `gorm:"column:estimated_weeks" json:"estimated_weeks,omitempty"`
	Description    string         `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Skill) TableName() string { return "skills" }

// PrerequisiteIDs decodes the prerequisite skill identifiers.
func (s *Skill) PrerequisiteIDs() []uuid.UUID {
	var out []uuid.UUID
	if len(s.Prerequisites) > 0 {
		_ = json.Unmarshal(s.Prerequisites, &out)
	}
	return out
}
