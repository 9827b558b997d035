package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/http/response"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type DogHandler struct {
	log  *logger.Logger
	dogs repos.DogRepo
}

func NewDogHandler(baseLog *logger.Logger, dogs repos.DogRepo) *DogHandler {
	return &DogHandler{
		log:  baseLog.With("handler", "DogHandler"),
		dogs: dogs,
	}
}

type createDogRequest struct {
	Name      string     `json:"name"`
	Breed     string     `json:"breed"`
	BirthDate *time.Time `json:"birth_date"`
	WeightKg  float64    `json:"weight_kg"`
	PhotoURL  string     `json:"photo_url"`
}

// POST /api/dogs
func (h *DogHandler) CreateDog(c *gin.Context) {
	var req createDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		response.RespondError(c, http.StatusBadRequest, "validation_error", errors.New("name is required"))
		return
	}

	now := time.Now().UTC()
	dog := &types.Dog{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Breed:     req.Breed,
		BirthDate: req.BirthDate,
		WeightKg:  req.WeightKg,
		PhotoURL:  req.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := h.dogs.Create(dbctx.Context{Ctx: c.Request.Context()}, []*types.Dog{dog}); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"dog": dog})
}

// GET /api/dogs
func (h *DogHandler) ListDogs(c *gin.Context) {
	dogs, err := h.dogs.List(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"dogs": dogs})
}

// GET /api/dogs/:id
func (h *DogHandler) GetDog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	dog, err := h.dogs.GetByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if dog == nil {
		response.RespondServiceError(c, fmt.Errorf("%w: dog %s", apperrors.ErrNotFound, id))
		return
	}
	response.RespondOK(c, gin.H{"dog": dog})
}

type updateDogRequest struct {
	Name      *string    `json:"name"`
	Breed     *string    `json:"breed"`
	BirthDate *time.Time `json:"birth_date"`
	WeightKg  *float64   `json:"weight_kg"`
	PhotoURL  *string    `json:"photo_url"`
}

// PATCH /api/dogs/:id
func (h *DogHandler) UpdateDog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	var req updateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			response.RespondError(c, http.StatusBadRequest, "validation_error", errors.New("name must not be empty"))
			return
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Breed != nil {
		updates["breed"] = *req.Breed
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}
	if req.WeightKg != nil {
		updates["weight_kg"] = *req.WeightKg
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if len(updates) == 0 {
		response.RespondError(c, http.StatusBadRequest, "validation_error", errors.New("no fields to update"))
		return
	}

	dbc := dbctx.Context{Ctx: c.Request.Context()}
	dog, err := h.dogs.GetByID(dbc, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if dog == nil {
		response.RespondServiceError(c, fmt.Errorf("%w: dog %s", apperrors.ErrNotFound, id))
		return
	}
	if err := h.dogs.UpdateFields(dbc, id, updates); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	dog, err = h.dogs.GetByID(dbc, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"dog": dog})
}

// DELETE /api/dogs/:id
func (h *DogHandler) DeleteDog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	dbc := dbctx.Context{Ctx: c.Request.Context()}
	dog, err := h.dogs.GetByID(dbc, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if dog == nil {
		response.RespondServiceError(c, fmt.Errorf("%w: dog %s", apperrors.ErrNotFound, id))
		return
	}
	if err := h.dogs.SoftDeleteByIDs(dbc, []uuid.UUID{id}); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}
