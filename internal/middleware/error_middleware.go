package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the wire envelope. Every handler
// and guard funnels failures through here so status codes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		fields := make([]dto.FieldError, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			fields = append(fields, dto.FieldError{Field: v.Field, Message: v.Message})
		}
		c.AbortWithStatusJSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed").WithErrors(fields))
		return
	}

	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		message = "internal server error"
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

func statusForError(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidCredentials, apperrors.ErrAccountInactive,
		apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized

	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound, apperrors.ErrAdminNotFound,
		apperrors.ErrCompanyNotFound, apperrors.ErrJobNotFound,
		apperrors.ErrApplicationNotFound):
		return http.StatusNotFound

	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrValidationFailed,
		apperrors.ErrConflict, apperrors.ErrDuplicateIdentity,
		apperrors.ErrDuplicateApplication, apperrors.ErrDeadlinePassed,
		apperrors.ErrInvalidStatus):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
