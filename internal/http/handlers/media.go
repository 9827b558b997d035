package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	"github.com/pawsteps/pawsteps-backend/internal/http/response"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
	"github.com/pawsteps/pawsteps-backend/internal/services"
)

type MediaHandler struct {
	log    *logger.Logger
	photos services.PhotoService
	assets repos.MediaAssetRepo
}

func NewMediaHandler(baseLog *logger.Logger, photos services.PhotoService, assets repos.MediaAssetRepo) *MediaHandler {
	return &MediaHandler{
		log:    baseLog.With("handler", "MediaHandler"),
		photos: photos,
		assets: assets,
	}
}

// POST /api/media/photos
// Multipart batch upload under the "photos" field. Each file gets its own
// outcome in the response; a failed file never blocks the rest.
func (h *MediaHandler) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}
	fileHeaders := form.File["photos"]
	if len(fileHeaders) == 0 {
		response.RespondError(c, http.StatusBadRequest, "validation_error", errors.New("no photos provided"))
		return
	}

	ownerType := c.PostForm("owner_type")
	ownerID := uuid.Nil
	if raw := c.PostForm("owner_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "validation_error", err)
			return
		}
		ownerID = parsed
	}

	uploads := make([]services.PhotoUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			h.log.Error("failed to open multipart file", "error", err, "file_name", fh.Filename)
			uploads = append(uploads, services.PhotoUpload{FileName: fh.Filename})
			continue
		}
		defer f.Close()
		uploads = append(uploads, services.PhotoUpload{FileName: fh.Filename, Reader: f})
	}

	results, err := h.photos.UploadPhotos(c.Request.Context(), ownerType, ownerID, uploads)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"results": results})
}

// GET /api/media/assets?owner_type=dog&owner_id=...
func (h *MediaHandler) ListAssets(c *gin.Context) {
	ownerType := c.Query("owner_type")
	if ownerType == "" {
		response.RespondError(c, http.StatusBadRequest, "validation_error", errors.New("owner_type is required"))
		return
	}
	var ownerID *uuid.UUID
	if raw := c.Query("owner_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "validation_error", err)
			return
		}
		ownerID = &parsed
	}

	rows, err := h.assets.ListByOwner(dbctx.Context{Ctx: c.Request.Context()}, ownerType, ownerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"assets": rows})
}
