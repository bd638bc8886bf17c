package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	domainerrors "hr-ledger.backend/internal/domain/errors"
)

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusOK, gin.H{"ok": true})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestError_AppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := domainerrors.NotFound("missing")
	Error(c, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeNotFound)
	assert.Contains(t, w.Body.String(), "missing")
}

func TestError_ValidationErrorListsFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, domainerrors.NewValidationError("employee_code", "name"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeMissingField)
	assert.Contains(t, w.Body.String(), `"employee_code"`)
	assert.Contains(t, w.Body.String(), `"name"`)
}

func TestError_SentinelMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, domainerrors.CodeInvalidCredentials},
		{domainerrors.ErrEmailNotVerified, http.StatusForbidden, domainerrors.CodeEmailUnverified},
		{domainerrors.ErrPendingApproval, http.StatusForbidden, domainerrors.CodePendingApproval},
		{domainerrors.ErrRejected, http.StatusForbidden, domainerrors.CodeRejected},
		{domainerrors.ErrCodeMismatch, http.StatusBadRequest, domainerrors.CodeCodeMismatch},
		{domainerrors.ErrCodeExpired, http.StatusBadRequest, domainerrors.CodeCodeExpired},
		{domainerrors.ErrTooManyAttempts, http.StatusTooManyRequests, domainerrors.CodeTooManyAttempts},
		{domainerrors.ErrMissingFilter, http.StatusBadRequest, domainerrors.CodeMissingFilter},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		Error(c, tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), tc.code, tc.err.Error())
	}
}

func TestError_GenericError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeInternal)
}

func TestError_PolicyErrorCarriesRemediation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, domainerrors.PolicyError(errors.New("infinite recursion detected in policy")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodePolicy)
	assert.Contains(t, w.Body.String(), "row-level security policy")
}
