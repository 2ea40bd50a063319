package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/user"
	"github.com/giftex-inc/giftex/internal/shared/constants"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type UserItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []UserItem
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	page := query.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	users, total, err := uc.userRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]UserItem, 0, len(users))
	for _, u := range users {
		items = append(items, UserItem{
			ID:        u.ID(),
			Name:      u.Name(),
			Email:     u.Email(),
			Role:      u.Role().String(),
			Company:   u.Company(),
			Phone:     u.Phone(),
			Active:    u.IsActive(),
			CreatedAt: u.CreatedAt(),
		})
	}

	return &ListUsersResult{
		Users:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

type SetUserActiveCommand struct {
	UserID uint
	Active bool
}

// SetUserActiveUseCase toggles portal access. Deactivated accounts fail
// login with the same generic message as bad credentials.
type SetUserActiveUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSetUserActiveUseCase(userRepo user.Repository, logger logger.Interface) *SetUserActiveUseCase {
	return &SetUserActiveUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SetUserActiveUseCase) Execute(ctx context.Context, cmd SetUserActiveCommand) error {
	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if cmd.Active {
		u.Activate()
	} else {
		u.Deactivate()
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return err
	}
	uc.logger.Infow("user active flag changed", "user_id", cmd.UserID, "active", cmd.Active)
	return nil
}

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// ChangePasswordUseCase lets an authenticated user rotate their own
// password after proving the current one.
type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	verifier PasswordVerifier
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if len(cmd.NewPassword) < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := uc.verifier.Verify(cmd.CurrentPassword, u.PasswordHash()); err != nil {
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to process password")
	}

	if err := u.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to change password", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
