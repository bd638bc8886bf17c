package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"hr-ledger.backend/internal/domain/entities"
	"hr-ledger.backend/pkg/jwt"
)

type userRepoStub struct {
	getByID func(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

func (s *userRepoStub) Create(context.Context, *entities.User) error { return nil }
func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getByID(ctx, id)
}
func (s *userRepoStub) GetByEmail(context.Context, string) (*entities.User, error) {
	return nil, nil
}
func (s *userRepoStub) UpdateVerification(context.Context, *entities.User) error { return nil }
func (s *userRepoStub) UpdateStatus(context.Context, uuid.UUID, entities.UserStatus) error {
	return nil
}
func (s *userRepoStub) UpdateRole(context.Context, uuid.UUID, entities.UserRole) error { return nil }
func (s *userRepoStub) UpdateLastLogin(context.Context, uuid.UUID) error               { return nil }
func (s *userRepoStub) List(context.Context) ([]*entities.User, error)                 { return nil, nil }
func (s *userRepoStub) ListPending(context.Context) ([]*entities.User, error)          { return nil, nil }

func TestAuthMiddleware_BearerFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)

	r := gin.New()
	r.Use(AuthMiddleware(jwtService))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer invalid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(uuid.New(), "u@example.com", "user")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func approvalTestRouter(t *testing.T, user *entities.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)

	repo := &userRepoStub{
		getByID: func(context.Context, uuid.UUID) (*entities.User, error) { return user, nil },
	}

	r := gin.New()
	r.Use(AuthMiddleware(jwtService), ApprovalMiddleware(repo))
	r.GET("/records", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/admin", AdminMiddleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func approvedRequest(t *testing.T, user *entities.User, path string) *httptest.ResponseRecorder {
	t.Helper()
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	pair, err := jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	approvalTestRouter(t, user).ServeHTTP(w, req)
	return w
}

func TestApprovalMiddleware_GatesByAccountState(t *testing.T) {
	base := func() *entities.User {
		return &entities.User{
			ID:            uuid.New(),
			Email:         "u@example.com",
			Role:          entities.UserRoleUser,
			Status:        entities.UserStatusApproved,
			EmailVerified: true,
		}
	}

	t.Run("approved passes", func(t *testing.T) {
		w := approvedRequest(t, base(), "/records")
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unverified blocked", func(t *testing.T) {
		u := base()
		u.EmailVerified = false
		w := approvedRequest(t, u, "/records")
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("pending blocked", func(t *testing.T) {
		u := base()
		u.Status = entities.UserStatusPending
		w := approvedRequest(t, u, "/records")
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejected blocked", func(t *testing.T) {
		u := base()
		u.Status = entities.UserStatusRejected
		w := approvedRequest(t, u, "/records")
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	base := func(role entities.UserRole) *entities.User {
		return &entities.User{
			ID:            uuid.New(),
			Email:         "u@example.com",
			Role:          role,
			Status:        entities.UserStatusApproved,
			EmailVerified: true,
		}
	}

	t.Run("admin passes", func(t *testing.T) {
		w := approvedRequest(t, base(entities.UserRoleAdmin), "/admin")
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("regular user blocked", func(t *testing.T) {
		w := approvedRequest(t, base(entities.UserRoleUser), "/admin")
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
