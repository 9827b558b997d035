package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DogSkill tracks one dog's progression through one skill. The proficiency
// level only ever advances forward (basic -> generalized -> proofed); it never
// regresses except via the explicit administrative demotion path. Status
// becomes mastered only after reaching proofed and satisfying that level's
// requirements.
type DogSkill struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DogID   uuid.UUID `gorm:"type:uuid;not null;index:idx_dog_skill,unique,priority:1" json:"dog_id"`
	Dog     *Dog      `gorm:"constraint:OnDelete:CASCADE;foreignKey:DogID;references:ID" json:"dog,omitempty"`
	SkillID uuid.UUID `gorm:"type:uuid;not null;index:idx_dog_skill,unique,priority:2" json:"skill_id"`
	Skill   *Skill    `gorm:"constraint:OnDelete:CASCADE;foreignKey:SkillID;references:ID" json:"skill,omitempty"`

	ProficiencyLevel ProficiencyLevel `gorm:"column:proficiency_level;type:text;not null" json:"proficiency_level"`
	Status           SkillStatus      `gorm:"column:status;type:text;not null;index" json:"status"`
	TotalSessions    int              `gorm:"column:total_sessions;not null" json:"total_sessions"`

	StartedAt  time.Time  `gorm:"column:started_at;not null" json:"started_at"`
	MasteredAt *time.Time `gorm:"column:mastered_at" json:"mastered_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (DogSkill) TableName() string { return "dog_skills" }
