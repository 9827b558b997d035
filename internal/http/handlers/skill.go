package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	"github.com/pawsteps/pawsteps-backend/internal/http/response"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
	"github.com/pawsteps/pawsteps-backend/internal/services"
)

type SkillHandler struct {
	log     *logger.Logger
	skills  repos.SkillRepo
	catalog services.CatalogService
}

func NewSkillHandler(baseLog *logger.Logger, skills repos.SkillRepo, catalog services.CatalogService) *SkillHandler {
	return &SkillHandler{
		log:     baseLog.With("handler", "SkillHandler"),
		skills:  skills,
		catalog: catalog,
	}
}

// GET /api/skills?category=obedience
func (h *SkillHandler) ListSkills(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}

	if category := c.Query("category"); category != "" {
		skills, err := h.skills.ListByCategory(dbc, category)
		if err != nil {
			response.RespondServiceError(c, err)
			return
		}
		response.RespondOK(c, gin.H{"skills": skills})
		return
	}

	skills, err := h.skills.List(dbc)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skills": skills})
}

// GET /api/skills/:id
func (h *SkillHandler) GetSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	skill, err := h.skills.GetByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if skill == nil {
		response.RespondServiceError(c, fmt.Errorf("%w: skill %s", apperrors.ErrNotFound, id))
		return
	}
	response.RespondOK(c, gin.H{"skill": skill})
}

// GET /api/requirements
// The advancement requirement for every proficiency level.
func (h *SkillHandler) ListRequirements(c *gin.Context) {
	rows, err := h.catalog.ListRequirements(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"requirements": rows})
}
