package db

import (
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Dogs + media
		// =========================
		&types.Dog{},
		&types.MediaAsset{},

		// =========================
		// Training catalog + progression
		// =========================
		&types.Skill{},
		&types.ProficiencyRequirement{},
		&types.DogSkill{},
		&types.PracticeSession{},

		// =========================
		// Care logging
		// =========================
		&types.HealthRecord{},
		&types.ActivityRecord{},
	)
}
