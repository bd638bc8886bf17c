package repositories

import (
	"context"

	"github.com/google/uuid"
	"hr-ledger.backend/internal/domain/entities"
)

// UserRepository defines account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateVerification(ctx context.Context, user *entities.User) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.User, error)
	ListPending(ctx context.Context) ([]*entities.User, error)
}
