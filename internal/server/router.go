package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/pawsteps/pawsteps-backend/internal/http/handlers"
)

type RouterConfig struct {
	SkillHandler        *handlers.SkillHandler
	DogHandler          *handlers.DogHandler
	DogSkillHandler     *handlers.DogSkillHandler
	SessionHandler      *handlers.SessionHandler
	HealthRecordHandler *handlers.HealthRecordHandler
	WalkHandler         *handlers.WalkHandler
	MediaHandler        *handlers.MediaHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Tracing; spans are no-ops until the tracer provider is installed.
	router.Use(otelgin.Middleware("pawsteps-backend"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Skill catalog
		api.GET("/skills", cfg.SkillHandler.ListSkills)
		api.GET("/skills/:id", cfg.SkillHandler.GetSkill)
		api.GET("/requirements", cfg.SkillHandler.ListRequirements)

		// Dogs
		api.POST("/dogs", cfg.DogHandler.CreateDog)
		api.GET("/dogs", cfg.DogHandler.ListDogs)
		api.GET("/dogs/:id", cfg.DogHandler.GetDog)
		api.PATCH("/dogs/:id", cfg.DogHandler.UpdateDog)
		api.DELETE("/dogs/:id", cfg.DogHandler.DeleteDog)

		// Skill progression
		api.POST("/dogs/:id/skills/:skillId/start", cfg.DogSkillHandler.StartSkill)
		api.GET("/dogs/:id/skills", cfg.DogSkillHandler.ListForDog)
		api.GET("/dog-skills/:id/progress", cfg.DogSkillHandler.GetProgress)
		api.POST("/dog-skills/:id/sessions", cfg.SessionHandler.RecordSession)
		api.GET("/dog-skills/:id/sessions", cfg.SessionHandler.ListSessions)
		api.POST("/dog-skills/:id/level-up", cfg.DogSkillHandler.LevelUp)
		api.POST("/dog-skills/:id/master", cfg.DogSkillHandler.MarkMastered)
		api.POST("/dog-skills/:id/reset", cfg.DogSkillHandler.Reset)
		api.POST("/dog-skills/:id/demote", cfg.DogSkillHandler.Demote)

		// Health + activity
		api.POST("/dogs/:id/health-records", cfg.HealthRecordHandler.CreateHealthRecord)
		api.GET("/dogs/:id/health-records", cfg.HealthRecordHandler.ListHealthRecords)
		api.GET("/health-records/:id", cfg.HealthRecordHandler.GetHealthRecord)
		api.POST("/dogs/:id/walks", cfg.WalkHandler.CreateWalk)
		api.GET("/dogs/:id/walks", cfg.WalkHandler.ListWalks)
		api.GET("/walks/:id", cfg.WalkHandler.GetWalk)

		// Media
		api.POST("/media/photos", cfg.MediaHandler.UploadPhotos)
		api.GET("/media/assets", cfg.MediaHandler.ListAssets)
	}

	return router
}
