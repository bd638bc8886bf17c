package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
	// CurrentUserKey is the context key for the freshly loaded account
	CurrentUserKey = "currentUser"
)

// AuthMiddleware validates the bearer token and stores its claims
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    domainerrors.CodeUnauthorized,
				"message": "authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    domainerrors.CodeUnauthorized,
				"message": "invalid authorization format, use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "invalid token"
			if err == jwt.ErrExpiredToken {
				message = "token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    domainerrors.CodeUnauthorized,
				"message": message,
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)

		c.Next()
	}
}

// ApprovalMiddleware reloads the account on every request so that approval
// revocation takes effect immediately rather than at token expiry. Only
// verified, approved accounts get past it.
func ApprovalMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    domainerrors.CodeUnauthorized,
				"message": "authentication required",
			})
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, domainerrors.Unauthorized("account no longer exists"))
			c.Abort()
			return
		}

		if !user.EmailVerified {
			response.Error(c, domainerrors.ErrEmailNotVerified)
			c.Abort()
			return
		}
		switch user.Status {
		case entities.UserStatusApproved:
		case entities.UserStatusPending:
			response.Error(c, domainerrors.ErrPendingApproval)
			c.Abort()
			return
		default:
			response.Error(c, domainerrors.ErrRejected)
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// AdminMiddleware allows only admin accounts through. It runs after
// ApprovalMiddleware and reads the freshly loaded account.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok || user.Role != entities.UserRoleAdmin {
			response.Error(c, domainerrors.Forbidden("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetCurrentUser gets the freshly loaded account from context
func GetCurrentUser(c *gin.Context) (*entities.User, bool) {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok
}
