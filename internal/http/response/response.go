package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondServiceError maps the service error taxonomy onto HTTP statuses so
// handlers never inspect sentinels themselves.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		RespondError(c, http.StatusBadRequest, "validation_error", err)
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperrors.ErrIneligibleTransition):
		RespondError(c, http.StatusUnprocessableEntity, "ineligible_transition", err)
	case errors.Is(err, apperrors.ErrNotEligible):
		RespondError(c, http.StatusUnprocessableEntity, "not_eligible", err)
	case errors.Is(err, apperrors.ErrConcurrentModification):
		RespondError(c, http.StatusConflict, "concurrent_modification", err)
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "storage_unavailable", err)
	case errors.Is(err, apperrors.ErrConfiguration):
		RespondError(c, http.StatusInternalServerError, "configuration_error", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
