package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeSession is an append-only record of one training session. Sessions
// are never edited or deleted in normal operation and are owned exclusively
// by their DogSkill.
type PracticeSession struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DogSkillID uuid.UUID `gorm:"type:uuid;not null;index" json:"dog_skill_id"`
	DogSkill   *DogSkill `gorm:"constraint:OnDelete:CASCADE;foreignKey:DogSkillID;references:ID" json:"dog_skill,omitempty"`

	Context          string           `gorm:"column:context;type:text;not null;index" json:"context"`
	DistractionLevel DistractionLevel `gorm:"column:distraction_level;type:text;not null" json:"distraction_level"`
	SuccessRate      int              `gorm:"column:success_rate;not null" json:"success_rate"`
	DurationMinutes  int              `gorm:"column:duration_minutes" json:"duration_minutes"`
	Notes            string           `gorm:"column:notes;type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PracticeSession) TableName() string { return "practice_sessions" }
