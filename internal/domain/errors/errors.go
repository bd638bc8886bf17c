package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")

	// Account gating
	ErrEmailNotVerified = errors.New("email not verified")
	ErrPendingApproval  = errors.New("account pending approval")
	ErrRejected         = errors.New("account rejected")

	// Email verification codes
	ErrCodeMismatch    = errors.New("verification code mismatch")
	ErrCodeExpired     = errors.New("verification code expired")
	ErrTooManyAttempts = errors.New("too many verification attempts")

	// Table store
	ErrMissingFilter       = errors.New("update and delete require at least one filter")
	ErrPolicyMisconfigured = errors.New("store authorization policy misconfigured")
)

// Stable machine-readable error codes returned in API responses.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeBadRequest         = "BAD_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailUnverified    = "EMAIL_UNVERIFIED"
	CodePendingApproval    = "PENDING_APPROVAL"
	CodeRejected           = "ACCOUNT_REJECTED"
	CodeCodeMismatch       = "CODE_MISMATCH"
	CodeCodeExpired        = "CODE_EXPIRED"
	CodeTooManyAttempts    = "TOO_MANY_ATTEMPTS"
	CodeMissingField       = "MISSING_REQUIRED_FIELD"
	CodeMissingFilter      = "MISSING_FILTER"
	CodePolicy             = "POLICY_MISCONFIGURATION"
	CodeInternal           = "INTERNAL_ERROR"
)

// PolicyRemediation is shown to operators when the backing store reports a
// recursive row-level policy. There is no runtime recovery; the policy has to
// be fixed in the store's dashboard.
const PolicyRemediation = "the user_profiles/users row-level security policy recurses onto itself; " +
	"drop the self-referencing policy in the store dashboard (or disable RLS on the table) and reload"

// AppError represents an application error with HTTP status and stable code
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrAlreadyExists)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}

// ValidationError reports form inputs whose required fields were blank.
// The screen redisplays the form with the listed fields highlighted.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// NewValidationError creates a validation error for the given blank fields
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// PolicyError wraps the store's recursive-policy failure with remediation text
func PolicyError(cause error) *AppError {
	return NewAppError(
		http.StatusInternalServerError,
		CodePolicy,
		fmt.Sprintf("%s: %s", ErrPolicyMisconfigured.Error(), PolicyRemediation),
		cause,
	)
}
