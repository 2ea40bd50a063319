package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/infrastructure/auth"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RefreshTokenUseCase struct {
	tokens *auth.JWTService
	logger logger.Interface
}

func NewRefreshTokenUseCase(tokens *auth.JWTService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokens: tokens,
		logger: logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewUnauthorizedError("refresh token is required")
	}

	pair, err := uc.tokens.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Debugw("refresh token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return &RefreshTokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
