package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
)

// UserFilter narrows the admin account list view
type UserFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Search string `form:"search"`
}

// AdminUsecase handles account approval and role management
type AdminUsecase struct {
	userRepo repositories.UserRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(userRepo repositories.UserRepository) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo}
}

// ListUsers fetches every account and applies the filter in memory. Search
// matches a substring of either the name or the email.
func (u *AdminUsecase) ListUsers(ctx context.Context, filter *UserFilter) ([]*entities.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return users, nil
	}
	result := make([]*entities.User, 0, len(users))
	for _, user := range users {
		if !exactMatch(string(user.Status), filter.Status) {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(user.Name, filter.Search) &&
			!strings.Contains(user.Email, filter.Search) {
			continue
		}
		result = append(result, user)
	}
	return result, nil
}

// ListPending lists accounts awaiting an approval decision
func (u *AdminUsecase) ListPending(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.ListPending(ctx)
}

// SetApproval records an approve/reject decision on a pending account.
// Decided accounts cannot return to pending, and a decision cannot be
// reversed through this path.
func (u *AdminUsecase) SetApproval(ctx context.Context, id uuid.UUID, input *entities.ApprovalInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Status != entities.UserStatusPending {
		return nil, domainerrors.Conflict("account already decided")
	}

	status := entities.UserStatus(input.Decision)
	if err := u.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, id)
}

// SetRole changes an account's role. Only approved accounts can change role.
func (u *AdminUsecase) SetRole(ctx context.Context, id uuid.UUID, input *entities.RoleInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Status != entities.UserStatusApproved {
		return nil, domainerrors.Conflict("role changes require an approved account")
	}

	if err := u.userRepo.UpdateRole(ctx, id, input.Role); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, id)
}
