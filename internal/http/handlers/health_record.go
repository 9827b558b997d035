package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
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

type HealthRecordHandler struct {
	log     *logger.Logger
	dogs    repos.DogRepo
	records repos.HealthRecordRepo
}

func NewHealthRecordHandler(baseLog *logger.Logger, dogs repos.DogRepo, records repos.HealthRecordRepo) *HealthRecordHandler {
	return &HealthRecordHandler{
		log:     baseLog.With("handler", "HealthRecordHandler"),
		dogs:    dogs,
		records: records,
	}
}

type createHealthRecordRequest struct {
	Kind       string         `json:"kind"`
	Title      string         `json:"title"`
	Findings   datatypes.JSON `json:"findings"`
	PhotoURLs  datatypes.JSON `json:"photo_urls"`
	RecordedAt *time.Time     `json:"recorded_at"`
}

// POST /api/dogs/:id/health-records
func (h *HealthRecordHandler) CreateHealthRecord(c *gin.Context) {
	dogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	var req createHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		response.RespondError(c, http.StatusBadRequest, "validation_error", errors.New("title is required"))
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
	recordedAt := now
	if req.RecordedAt != nil {
		recordedAt = req.RecordedAt.UTC()
	}
	row := &types.HealthRecord{
		ID:         uuid.New(),
		DogID:      dogID,
		Kind:       req.Kind,
		Title:      strings.TrimSpace(req.Title),
		Findings:   req.Findings,
		PhotoURLs:  req.PhotoURLs,
		RecordedAt: recordedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := h.records.Create(dbc, []*types.HealthRecord{row}); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"health_record": row})
}

// GET /api/health-records/:id
func (h *HealthRecordHandler) GetHealthRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	row, err := h.records.GetByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if row == nil {
		response.RespondServiceError(c, fmt.Errorf("%w: health record %s", apperrors.ErrNotFound, id))
		return
	}
	response.RespondOK(c, gin.H{"health_record": row})
}

// GET /api/dogs/:id/health-records
func (h *HealthRecordHandler) ListHealthRecords(c *gin.Context) {
	dogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	rows, err := h.records.ListByDog(dbctx.Context{Ctx: c.Request.Context()}, dogID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"health_records": rows})
}
