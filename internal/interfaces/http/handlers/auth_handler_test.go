package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/usecases"
	"hr-ledger.backend/pkg/crypto"
	"hr-ledger.backend/pkg/jwt"
)

type authUserRepoStub struct {
	users map[string]*entities.User
}

func newAuthUserRepoStub() *authUserRepoStub {
	return &authUserRepoStub{users: map[string]*entities.User{}}
}

func (s *authUserRepoStub) Create(_ context.Context, user *entities.User) error {
	s.users[user.Email] = user
	return nil
}
func (s *authUserRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}
func (s *authUserRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, domainerrors.ErrNotFound
}
func (s *authUserRepoStub) UpdateVerification(_ context.Context, user *entities.User) error {
	s.users[user.Email] = user
	return nil
}
func (s *authUserRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.UserStatus) error {
	for _, u := range s.users {
		if u.ID == id {
			u.Status = status
			return nil
		}
	}
	return domainerrors.ErrNotFound
}
func (s *authUserRepoStub) UpdateRole(context.Context, uuid.UUID, entities.UserRole) error {
	return nil
}
func (s *authUserRepoStub) UpdateLastLogin(context.Context, uuid.UUID) error { return nil }
func (s *authUserRepoStub) List(context.Context) ([]*entities.User, error)  { return nil, nil }
func (s *authUserRepoStub) ListPending(context.Context) ([]*entities.User, error) {
	return nil, nil
}

func newAuthTestRouter(repo *authUserRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	usecase := usecases.NewAuthUsecase(repo, jwtService, nil)
	h := NewAuthHandler(usecase)

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/verify-email", h.VerifyEmail)
	r.POST("/login", h.Login)
	return r
}

func TestAuthHandler_RegisterReturnsVerificationCode(t *testing.T) {
	r := newAuthTestRouter(newAuthUserRepoStub())

	body := `{"email":"new@example.com","name":"New User","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["verificationCode"].(string)
	require.Len(t, code, 6)
}

func TestAuthHandler_RegisterRejectsBadInput(t *testing.T) {
	r := newAuthTestRouter(newAuthUserRepoStub())

	body := `{"email":"not-an-email","name":"x","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RegisterDuplicateConflicts(t *testing.T) {
	repo := newAuthUserRepoStub()
	r := newAuthTestRouter(repo)

	body := `{"email":"dup@example.com","name":"Dup","password":"password123"}`
	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, want, w.Code, "attempt %d", i+1)
	}
}

func TestAuthHandler_LoginGatesUnapprovedAccounts(t *testing.T) {
	repo := newAuthUserRepoStub()
	r := newAuthTestRouter(repo)

	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	repo.users["pending@example.com"] = &entities.User{
		ID:            uuid.New(),
		Email:         "pending@example.com",
		Name:          "Pending",
		PasswordHash:  hash,
		Role:          entities.UserRoleUser,
		Status:        entities.UserStatusPending,
		EmailVerified: true,
	}

	body := `{"email":"pending@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), domainerrors.CodePendingApproval)
}

func TestAuthHandler_LoginApprovedIssuesTokens(t *testing.T) {
	repo := newAuthUserRepoStub()
	r := newAuthTestRouter(repo)

	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	repo.users["ok@example.com"] = &entities.User{
		ID:            uuid.New(),
		Email:         "ok@example.com",
		Name:          "Ok",
		PasswordHash:  hash,
		Role:          entities.UserRoleUser,
		Status:        entities.UserStatusApproved,
		EmailVerified: true,
	}

	body := `{"email":"ok@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp entities.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
}

func TestAuthHandler_VerifyEmailWrongCode(t *testing.T) {
	repo := newAuthUserRepoStub()
	r := newAuthTestRouter(repo)

	body := `{"email":"new@example.com","name":"New User","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	body = `{"email":"new@example.com","code":"000000"}`
	req = httptest.NewRequest(http.MethodPost, "/verify-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code == http.StatusOK {
		// one-in-a-million collision with the generated code
		return
	}
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), domainerrors.CodeCodeMismatch)
}
