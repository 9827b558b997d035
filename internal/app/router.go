package app

import (
	"github.com/gin-gonic/gin"

	"github.com/pawsteps/pawsteps-backend/internal/server"
)

func wireRouter(handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		SkillHandler:        handlerset.Skill,
		DogHandler:          handlerset.Dog,
		DogSkillHandler:     handlerset.DogSkill,
		SessionHandler:      handlerset.Session,
		HealthRecordHandler: handlerset.HealthRecord,
		WalkHandler:         handlerset.Walk,
		MediaHandler:        handlerset.Media,
	})
}
