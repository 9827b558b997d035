package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/http/response"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type WalkHandler struct {
	log   *logger.Logger
	dogs  repos.DogRepo
	walks repos.ActivityRecordRepo
}

func NewWalkHandler(baseLog *logger.Logger, dogs repos.DogRepo, walks repos.ActivityRecordRepo) *WalkHandler {
	return &WalkHandler{
		log:   baseLog.With("handler", "WalkHandler"),
		dogs:  dogs,
		walks: walks,
	}
}

type createWalkRequest struct {
	DistanceMeters  float64        `json:"distance_meters"`
	DurationMinutes int            `json:"duration_minutes"`
	RoutePath       datatypes.JSON `json:"route_path"`
	StartedAt       *time.Time     `json:"started_at"`
}

// POST /api/dogs/:id/walks
func (h *WalkHandler) CreateWalk(c *gin.Context) {
	dogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	var req createWalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	if req.DistanceMeters < 0 || req.DurationMinutes < 0 {
		response.RespondError(c, http.StatusBadRequest, "validation_error", errors.New("distance and duration must not be negative"))
		return
	}

	dbc := dbctx.Context{Ctx: c.Request.Context()}
	dog, err := h.dogs.GetByID(dbc, dogID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if dog == nil {
		response.RespondServiceError(c, fmt.Errorf("%w: dog %s", apperrors.ErrNotFound, dogID))
		return
	}

	now := time.Now().UTC()
	startedAt := now
	if req.StartedAt != nil {
		startedAt = req.StartedAt.UTC()
	}
	row := &types.ActivityRecord{
		ID:              uuid.New(),
		DogID:           dogID,
		DistanceMeters:  req.DistanceMeters,
		DurationMinutes: req.DurationMinutes,
		RoutePath:       req.RoutePath,
		StartedAt:       startedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := h.walks.Create(dbc, []*types.ActivityRecord{row}); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"walk": row})
}

// GET /api/walks/:id
func (h *WalkHandler) GetWalk(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	row, err := h.walks.GetByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if row == nil {
		response.RespondServiceError(c, fmt.Errorf("%w: walk %s", apperrors.ErrNotFound, id))
		return
	}
	response.RespondOK(c, gin.H{"walk": row})
}

// GET /api/dogs/:id/walks
func (h *WalkHandler) ListWalks(c *gin.Context) {
	dogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	rows, err := h.walks.ListByDog(dbctx.Context{Ctx: c.Request.Context()}, dogID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"walks": rows})
}
