package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
	"hr-ledger.backend/pkg/crypto"
	"hr-ledger.backend/pkg/jwt"
	"hr-ledger.backend/pkg/redis"
)

const (
	verificationTTL         = 30 * time.Minute
	maxVerificationAttempts = 5
	sessionTTL              = 24 * time.Hour
)

// SessionStore is the server-side token store used when a client asks for a
// session instead of holding tokens itself
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles sign-up, email verification and sign-in
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	sessions   SessionStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, sessions SessionStore) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// passwordStrongEnough requires at least one letter and one digit. Length is
// enforced by the input binding.
func passwordStrongEnough(password string) bool {
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		}
	}
	return hasLetter && hasDigit
}

// Register creates a pending, unverified account and issues a verification
// code. The code is returned to the registrant in place of email delivery.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.RegistrationOutcome, error) {
	if !passwordStrongEnough(input.Password) {
		return nil, domainerrors.BadRequest("password must contain both letters and digits")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:                    uuid.New(),
		Email:                 input.Email,
		Name:                  input.Name,
		PasswordHash:          passwordHash,
		Role:                  entities.UserRoleUser,
		Status:                entities.UserStatusPending,
		VerificationCode:      code,
		VerificationExpiresAt: null.TimeFrom(time.Now().Add(verificationTTL)),
		CreatedAt:             time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &entities.RegistrationOutcome{User: user, VerificationCode: code}, nil
}

// VerifyEmail checks the submitted code against the stored one. A wrong code
// burns one of the five attempts; a correct code after expiry still fails.
func (u *AuthUsecase) VerifyEmail(ctx context.Context, input *entities.VerifyEmailInput) error {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return nil
	}
	if user.VerificationAttempts >= maxVerificationAttempts {
		return domainerrors.ErrTooManyAttempts
	}
	if user.VerificationExpiresAt.Valid && time.Now().After(user.VerificationExpiresAt.Time) {
		return domainerrors.ErrCodeExpired
	}
	if user.VerificationCode == "" || user.VerificationCode != input.Code {
		user.VerificationAttempts++
		if err := u.userRepo.UpdateVerification(ctx, user); err != nil {
			return err
		}
		if user.VerificationAttempts >= maxVerificationAttempts {
			return domainerrors.ErrTooManyAttempts
		}
		return domainerrors.ErrCodeMismatch
	}

	user.EmailVerified = true
	user.VerificationCode = ""
	user.VerificationExpiresAt = null.Time{}
	user.VerificationAttempts = 0
	return u.userRepo.UpdateVerification(ctx, user)
}

// ResendCode rotates the verification code, resetting expiry and the attempt
// budget. The new code is returned for display.
func (u *AuthUsecase) ResendCode(ctx context.Context, input *entities.ResendCodeInput) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if user.EmailVerified {
		return "", domainerrors.BadRequest("email already verified")
	}

	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return "", err
	}

	user.VerificationCode = code
	user.VerificationExpiresAt = null.TimeFrom(time.Now().Add(verificationTTL))
	user.VerificationAttempts = 0
	if err := u.userRepo.UpdateVerification(ctx, user); err != nil {
		return "", err
	}
	return code, nil
}

// Login authenticates a user. Gating is ordered: bad credentials first, then
// unverified email, then the approval state.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}
	switch user.Status {
	case entities.UserStatusApproved:
	case entities.UserStatusPending:
		return nil, domainerrors.ErrPendingApproval
	case entities.UserStatusRejected:
		return nil, domainerrors.ErrRejected
	default:
		return nil, domainerrors.ErrForbidden
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}
	user.LastLogin = null.TimeFrom(time.Now())

	resp := &entities.AuthResponse{User: user}
	if input.UseSession && u.sessions != nil {
		sessionID := uuid.New().String()
		data := &redis.SessionData{
			UserID:       user.ID.String(),
			Email:        user.Email,
			Role:         string(user.Role),
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}
		if err := u.sessions.CreateSession(ctx, sessionID, data, sessionTTL); err != nil {
			return nil, err
		}
		resp.SessionID = sessionID
		return resp, nil
	}

	resp.AccessToken = tokenPair.AccessToken
	resp.RefreshToken = tokenPair.RefreshToken
	return resp, nil
}

// RefreshToken issues a new token pair from a valid refresh token. The user's
// current approval state is re-checked so a rejection takes effect at rotation.
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.Status != entities.UserStatusApproved {
		return nil, domainerrors.ErrForbidden
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// Logout drops a server-side session. A no-op for token-holding clients.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessions == nil {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
