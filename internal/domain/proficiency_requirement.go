package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProficiencyRequirement is the advancement gate for one proficiency level:
// minimum session count, required distinct practice contexts, and minimum
// average success rate. Seeded at migration time, never mutated by the
// application.
type ProficiencyRequirement struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ProficiencyLevel ProficiencyLevel `gorm:"column:proficiency_level;type:text;not null;uniqueIndex" json:"proficiency_level"`

	MinSessionsRequired int            `gorm:"column:min_sessions_required;not null" json:"min_sessions_required"`
	ContextsRequired    datatypes.JSON `gorm:"type:jsonb;column:contexts_required" json:"contexts_required"`
	MinSuccessRate      int            `gorm:"column:min_success_rate;not null" json:"min_success_rate"`
	Description         string         `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ProficiencyRequirement) TableName() string { return "proficiency_requirements" }

// ContextList decodes contexts_required into its label set. A decode error
// means the row is corrupt and the requirement must not be trusted.
func (r *ProficiencyRequirement) ContextList() ([]string, error) {
	if len(r.ContextsRequired) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(r.ContextsRequired, &out); err != nil {
		return nil, fmt.Errorf("decode contexts_required for level %q: %w", r.ProficiencyLevel, err)
	}
	return out, nil
}
