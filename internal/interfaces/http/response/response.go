package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "hr-ledger.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Sentinel domain errors are mapped onto their
// HTTP status and stable code; anything unrecognized becomes a 500.
func Error(c *gin.Context, err error) {
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    domainerrors.CodeMissingField,
			"message": verr.Error(),
			"fields":  verr.Fields,
		})
		return
	}

	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "invalid email or password", err)
	case errors.Is(err, domainerrors.ErrEmailNotVerified):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeEmailUnverified, "verify your email before signing in", err)
	case errors.Is(err, domainerrors.ErrPendingApproval):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodePendingApproval, "account is awaiting admin approval", err)
	case errors.Is(err, domainerrors.ErrRejected):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeRejected, "account has been rejected", err)
	case errors.Is(err, domainerrors.ErrCodeMismatch):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeCodeMismatch, "verification code does not match", err)
	case errors.Is(err, domainerrors.ErrCodeExpired):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeCodeExpired, "verification code has expired, request a new one", err)
	case errors.Is(err, domainerrors.ErrTooManyAttempts):
		return domainerrors.NewAppError(http.StatusTooManyRequests, domainerrors.CodeTooManyAttempts, "verification attempt limit reached, request a new code", err)
	case errors.Is(err, domainerrors.ErrMissingFilter):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeMissingFilter, "update and delete require at least one filter", err)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized(err.Error())
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}
