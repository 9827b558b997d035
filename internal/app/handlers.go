package app

import (
	"github.com/pawsteps/pawsteps-backend/internal/http/handlers"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type Handlers struct {
	Skill        *handlers.SkillHandler
	Dog          *handlers.DogHandler
	DogSkill     *handlers.DogSkillHandler
	Session      *handlers.SessionHandler
	HealthRecord *handlers.HealthRecordHandler
	Walk         *handlers.WalkHandler
	Media        *handlers.MediaHandler
}

func wireHandlers(log *logger.Logger, reposet Repos, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Skill:        handlers.NewSkillHandler(log, reposet.Skill, serviceset.Catalog),
		Dog:          handlers.NewDogHandler(log, reposet.Dog),
		DogSkill:     handlers.NewDogSkillHandler(log, reposet.DogSkill, serviceset.Lifecycle, serviceset.Transition, serviceset.Progression),
		Session:      handlers.NewSessionHandler(log, serviceset.Session),
		HealthRecord: handlers.NewHealthRecordHandler(log, reposet.Dog, reposet.HealthRecord),
		Walk:         handlers.NewWalkHandler(log, reposet.Dog, reposet.ActivityRecord),
		Media:        handlers.NewMediaHandler(log, serviceset.Photo, reposet.MediaAsset),
	}
}
