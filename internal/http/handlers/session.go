package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/http/response"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
	"github.com/pawsteps/pawsteps-backend/internal/services"
)

type SessionHandler struct {
	log      *logger.Logger
	sessions services.SessionService
}

func NewSessionHandler(baseLog *logger.Logger, sessions services.SessionService) *SessionHandler {
	return &SessionHandler{
		log:      baseLog.With("handler", "SessionHandler"),
		sessions: sessions,
	}
}

type recordSessionRequest struct {
	Context          string                 `json:"context"`
	DistractionLevel types.DistractionLevel `json:"distraction_level"`
	SuccessRate      int                    `json:"success_rate"`
	DurationMinutes  int                    `json:"duration_minutes"`
	Notes            string                 `json:"notes"`
}

// POST /api/dog-skills/:id/sessions
func (h *SessionHandler) RecordSession(c *gin.Context) {
	dogSkillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	var req recordSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	session, err := h.sessions.Record(c.Request.Context(), services.RecordSessionInput{
		DogSkillID:       dogSkillID,
		Context:          req.Context,
		DistractionLevel: req.DistractionLevel,
		SuccessRate:      req.SuccessRate,
		DurationMinutes:  req.DurationMinutes,
		Notes:            req.Notes,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"session": session})
}

// GET /api/dog-skills/:id/sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	dogSkillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	rows, err := h.sessions.ListForDogSkill(c.Request.Context(), dogSkillID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sessions": rows})
}
