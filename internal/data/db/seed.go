package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
)

// The baseline success-rate floor shared by every level.
const defaultMinSuccessRate = 70

// SeedSkills installs the built-in trick catalog. Name is the natural key:
// already-present skills are never overwritten.
func SeedSkills(db *gorm.DB) error {
	defaults := []struct {
		name           string
		category       string
		difficulty     int
		estimatedWeeks int
		description    string
	}{
		{"sit", "obedience", 1, 1, "Sit on cue and hold until released."},
		{"down", "obedience", 2, 2, "Lie down on cue from standing or sitting."},
		{"stay", "obedience", 4, 4, "Hold position at a distance with duration."},
		{"recall", "obedience", 5, 6, "Come when called, past distractions."},
		{"heel", "obedience", 6, 8, "Walk at handler's side on a loose leash."},
		{"leave-it", "impulse-control", 5, 4, "Ignore food or objects on cue."},
		{"shake", "tricks", 2, 1, "Offer a paw on cue."},
		{"roll-over", "tricks", 4, 3, "Full roll from a down position."},
		{"spin", "tricks", 3, 2, "Turn a full circle in place."},
		{"play-dead", "tricks", 5, 3, "Drop flat on cue and hold."},
	}

	now := time.Now().UTC()
	for _, d := range defaults {
		row := types.Skill{
			ID:             uuid.New(),
			Name:           d.name,
			Category:       d.category,
			Difficulty:     d.difficulty,
			EstimatedWeeks: d.estimatedWeeks,
			Description:    d.description,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := db.
			Where("name = ?", d.name).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedProficiencyRequirements inserts the advancement requirement for each
// proficiency level if it is not already present. Existing rows are left
// untouched so operators can tune thresholds out of band.
func SeedProficiencyRequirements(db *gorm.DB) error {
	defaults := []struct {
		level       types.ProficiencyLevel
		minSessions int
		contexts    []string
		description string
	}{
		{
			level:       types.ProficiencyBasic,
			minSessions: 5,
			contexts:    []string{"home"},
			description: "Reliable at home with no distractions.",
		},
		{
			level:       types.ProficiencyGeneralized,
			minSessions: 10,
			contexts:    []string{"home", "park", "street"},
			description: "Works in new places with mild distractions.",
		},
		{
			level:       types.ProficiencyProofed,
			minSessions: 20,
			contexts:    []string{"park", "street", "training-class", "friends-house"},
			description: "Holds up around heavy distractions anywhere.",
		},
	}

	now := time.Now().UTC()
	for _, d := range defaults {
		raw, err := json.Marshal(d.contexts)
		if err != nil {
			return err
		}
		row := types.ProficiencyRequirement{
			ID:                  uuid.New(),
			ProficiencyLevel:    d.level,
			MinSessionsRequired: d.minSessions,
			ContextsRequired:    datatypes.JSON(raw),
			MinSuccessRate:      defaultMinSuccessRate,
			Description:         d.description,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		err = db.
			Where("proficiency_level = ?", d.level).
			FirstOrCreate(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
