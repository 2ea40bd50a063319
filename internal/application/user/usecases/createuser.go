package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/user"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

const minPasswordLength = 8

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
	Company  string
	Phone    string
}

type CreateUserResult struct {
	UserID    uint
	CreatedAt time.Time
}

// CreateUserUseCase registers an account. Accounts are staff-created; there
// is no public signup.
type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	u, err := user.NewUser(cmd.Name, email, hash, role, cmd.Company, cmd.Phone)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "email", email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", role.String())
	return &CreateUserResult{UserID: u.ID(), CreatedAt: u.CreatedAt()}, nil
}
