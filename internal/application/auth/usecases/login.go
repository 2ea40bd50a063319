package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/user"
	"github.com/giftex-inc/giftex/internal/infrastructure/auth"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID       uint
	Name         string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// PasswordVerifier abstracts the bcrypt hasher for testing.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordVerifier
	tokens   *auth.JWTService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordVerifier,
	tokens *auth.JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		// Same response for unknown email and wrong password.
		uc.logger.Debugw("login attempt for unknown email", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !u.IsActive() {
		uc.logger.Warnw("login attempt on inactive account", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Debugw("login attempt with wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())

	return &LoginResult{
		UserID:       u.ID(),
		Name:         u.Name(),
		Role:         u.Role().String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
