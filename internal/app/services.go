package app

import (
	"gorm.io/gorm"

	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
	"github.com/pawsteps/pawsteps-backend/internal/platform/gcp"
	"github.com/pawsteps/pawsteps-backend/internal/services"
)

type Services struct {
	Catalog     services.CatalogService
	Progression services.ProgressionService
	Session     services.SessionService
	Transition  services.TransitionService
	Lifecycle   services.LifecycleService
	Photo       services.PhotoService
	Bucket      gcp.BucketService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")

	// A missing bucket config degrades photo uploads, not the whole app.
	bucketService, err := gcp.NewBucketService(log)
	if err != nil {
		log.Warn("Could not init BucketService", "error", err)
		bucketService = nil
	}

	catalog := services.NewCatalogService(db, log, reposet.ProficiencyRequirement)
	progression := services.NewProgressionService(db, log, catalog, reposet.DogSkill, reposet.PracticeSession)

	return Services{
		Catalog:     catalog,
		Progression: progression,
		Session:     services.NewSessionService(db, log, reposet.DogSkill, reposet.PracticeSession),
		Transition:  services.NewTransitionService(db, log, reposet.DogSkill, progression),
		Lifecycle:   services.NewLifecycleService(db, log, reposet.Dog, reposet.Skill, reposet.DogSkill, progression),
		Photo:       services.NewPhotoService(db, log, bucketService, reposet.MediaAsset),
		Bucket:      bucketService,
	}
}
