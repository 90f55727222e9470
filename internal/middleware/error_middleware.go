package middleware

import (
	"errors"
	"net/http"

	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// HandleAPIError maps service errors onto HTTP status codes and the standard
// error envelope. Controllers call it with whatever their service returned.
func HandleAPIError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var customErr *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	switch {
	case isNotFound(err):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message)

	case isConflict(err):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, message)

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, message)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, message)

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, message)

	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, message)

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidTransition):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrUserNotFound) ||
		errors.Is(err, apperrors.ErrProfileNotFound) ||
		errors.Is(err, apperrors.ErrDriveNotFound) ||
		errors.Is(err, apperrors.ErrApplicationNotFound) ||
		errors.Is(err, apperrors.ErrMentorshipRequestNotFound) ||
		errors.Is(err, apperrors.ErrSlotNotFound) ||
		errors.Is(err, apperrors.ErrReferralPostNotFound) ||
		errors.Is(err, apperrors.ErrReferralRequestNotFound)
}

func isConflict(err error) bool {
	return errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrResourceAlreadyExists) ||
		errors.Is(err, apperrors.ErrEmailAlreadyExists) ||
		errors.Is(err, apperrors.ErrAlreadyApplied) ||
		errors.Is(err, apperrors.ErrDriveCompleted) ||
		errors.Is(err, apperrors.ErrInterviewSlotTaken) ||
		errors.Is(err, apperrors.ErrMentorshipRequestExists) ||
		errors.Is(err, apperrors.ErrSlotUnavailable) ||
		errors.Is(err, apperrors.ErrReferralRequestExists)
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	errorDetail := dto.NewErrorDetail(code, message)
	c.JSON(status, dto.NewErrorResponse(errorDetail))
}
