package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/infrastructure/models"
)

// UserRepository implements account data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:                    user.ID,
		Email:                 user.Email,
		Name:                  user.Name,
		PasswordHash:          user.PasswordHash,
		Role:                  string(user.Role),
		Status:                string(user.Status),
		EmailVerified:         user.EmailVerified,
		VerificationCode:      user.VerificationCode,
		VerificationExpiresAt: user.VerificationExpiresAt.Ptr(),
		VerificationAttempts:  user.VerificationAttempts,
		CreatedAt:             user.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateVerification writes back the verification state after a code is
// issued, rotated, attempted or confirmed
func (r *UserRepository) UpdateVerification(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"email_verified":          user.EmailVerified,
		"verification_code":       user.VerificationCode,
		"verification_expires_at": user.VerificationExpiresAt.Ptr(),
		"verification_attempts":   user.VerificationAttempts,
		"updated_at":              time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus records the admin's approval decision
func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == entities.UserStatusApproved {
		updates["approved_at"] = time.Now()
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateRole changes a user's role
func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"role":       string(role),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateLastLogin stamps a successful sign-in
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"last_login": time.Now(),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}
	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.toEntity(&userModels[i]))
	}
	return users, nil
}

// ListPending lists users awaiting an approval decision
func (r *UserRepository) ListPending(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.UserStatusPending)).
		Order("created_at ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}
	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.toEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                    m.ID,
		Email:                 m.Email,
		Name:                  m.Name,
		PasswordHash:          m.PasswordHash,
		Role:                  entities.UserRole(m.Role),
		Status:                entities.UserStatus(m.Status),
		EmailVerified:         m.EmailVerified,
		VerificationCode:      m.VerificationCode,
		VerificationExpiresAt: null.TimeFromPtr(m.VerificationExpiresAt),
		VerificationAttempts:  m.VerificationAttempts,
		CreatedAt:             m.CreatedAt,
		ApprovedAt:            null.TimeFromPtr(m.ApprovedAt),
		LastLogin:             null.TimeFromPtr(m.LastLogin),
	}
}
