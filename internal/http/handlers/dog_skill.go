package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/http/response"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
	"github.com/pawsteps/pawsteps-backend/internal/services"
)

type DogSkillHandler struct {
	log         *logger.Logger
	dogSkills   repos.DogSkillRepo
	lifecycle   services.LifecycleService
	transitions services.TransitionService
	progression services.ProgressionService
}

func NewDogSkillHandler(
	baseLog *logger.Logger,
	dogSkills repos.DogSkillRepo,
	lifecycle services.LifecycleService,
	transitions services.TransitionService,
	progression services.ProgressionService,
) *DogSkillHandler {
	return &DogSkillHandler{
		log:         baseLog.With("handler", "DogSkillHandler"),
		dogSkills:   dogSkills,
		lifecycle:   lifecycle,
		transitions: transitions,
		progression: progression,
	}
}

// POST /api/dogs/:id/skills/:skillId/start
func (h *DogSkillHandler) StartSkill(c *gin.Context) {
	dogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	skillID, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	ds, err := h.lifecycle.Start(c.Request.Context(), dogID, skillID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"dog_skill": ds})
}

// GET /api/dogs/:id/skills
func (h *DogSkillHandler) ListForDog(c *gin.Context) {
	dogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	rows, err := h.dogSkills.ListByDog(dbctx.Context{Ctx: c.Request.Context()}, dogID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"dog_skills": rows})
}

// GET /api/dog-skills/:id/progress
func (h *DogSkillHandler) GetProgress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	snap, err := h.progression.Evaluate(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"progress": snap})
}

type levelRequest struct {
	TargetLevel types.ProficiencyLevel `json:"target_level"`
}

// POST /api/dog-skills/:id/level-up
func (h *DogSkillHandler) LevelUp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	var req levelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	ds, err := h.transitions.LevelUp(c.Request.Context(), id, req.TargetLevel)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"dog_skill": ds})
}

// POST /api/dog-skills/:id/master
func (h *DogSkillHandler) MarkMastered(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	ds, err := h.lifecycle.MarkMastered(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"dog_skill": ds})
}

// POST /api/dog-skills/:id/reset
func (h *DogSkillHandler) Reset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	ds, err := h.lifecycle.Reset(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"dog_skill": ds})
}

// POST /api/dog-skills/:id/demote
// Administrative correction path, one level down.
func (h *DogSkillHandler) Demote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	var req levelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	ds, err := h.lifecycle.Demote(c.Request.Context(), id, req.TargetLevel)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"dog_skill": ds})
}
