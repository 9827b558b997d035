package app

import (
	"gorm.io/gorm"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type Repos struct {
	Dog                    repos.DogRepo
	Skill                  repos.SkillRepo
	DogSkill               repos.DogSkillRepo
	PracticeSession        repos.PracticeSessionRepo
	ProficiencyRequirement repos.ProficiencyRequirementRepo
	HealthRecord           repos.HealthRecordRepo
	ActivityRecord         repos.ActivityRecordRepo
	MediaAsset             repos.MediaAssetRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Dog:                    repos.NewDogRepo(db, log),
		Skill:                  repos.NewSkillRepo(db, log),
		DogSkill:               repos.NewDogSkillRepo(db, log),
		PracticeSession:        repos.NewPracticeSessionRepo(db, log),
		ProficiencyRequirement: repos.NewProficiencyRequirementRepo(db, log),
		HealthRecord:           repos.NewHealthRecordRepo(db, log),
		ActivityRecord:         repos.NewActivityRecordRepo(db, log),
		MediaAsset:             repos.NewMediaAssetRepo(db, log),
	}
}
