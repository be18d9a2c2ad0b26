package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/records/internal/app/models/dto"
	"github.com/yigit/records/internal/pkg/apperrors"
	"github.com/yigit/records/internal/pkg/logger"
)

// HandleAPIError maps a typed failure to its HTTP status and writes the
// standard error envelope. Store failures never leak their cause.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		violations := apperrors.Violations(err)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
				WithSeverity(dto.ErrorSeverityWarning).
				WithViolations(violations),
		))
	case errors.Is(err, apperrors.ErrDuplicateKey):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, apperrors.Message(err)).
				WithSeverity(dto.ErrorSeverityWarning),
		))
	case errors.Is(err, apperrors.ErrIntegrityViolation):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInUse, apperrors.Message(err)).
				WithSeverity(dto.ErrorSeverityWarning),
		))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.Message(err)).
				WithSeverity(dto.ErrorSeverityInfo),
		))
	case errors.Is(err, apperrors.ErrConnection):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Store unreachable")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database error").
				WithSeverity(dto.ErrorSeverityCritical),
		))
	case errors.Is(err, apperrors.ErrQuery):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Store failure")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database error"),
		))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

// HandleBindError reports a request body that could not be decoded.
func HandleBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body").
			WithDetails(err.Error()),
	))
}
