package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftex-inc/giftex/internal/domain/user"
	"github.com/giftex-inc/giftex/internal/infrastructure/auth"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

func testUser(t *testing.T, active bool) *user.User {
	t.Helper()
	u, err := user.NewUser("Cliente", "cliente@example.com", "hash", authorization.RoleClient, "", "")
	require.NoError(t, err)
	require.NoError(t, u.SetID(7))
	if !active {
		u.Deactivate()
	}
	return u
}

func newLoginUseCase(repo *mockUserRepository, verifier *mockPasswordVerifier) *LoginUseCase {
	return NewLoginUseCase(repo, verifier, auth.NewJWTService("test-secret", 15, 7), logger.NewLogger())
}

func TestLoginSuccess(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return testUser(t, true), nil
		},
	}
	verifier := &mockPasswordVerifier{}

	uc := newLoginUseCase(repo, verifier)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "cliente@example.com",
		Password: "senha",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "client", result.Role)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
}

func TestLoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	unknownRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, appErrors.NewNotFoundError("user not found")
		},
	}
	wrongPassRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return testUser(t, true), nil
		},
	}
	failVerifier := &mockPasswordVerifier{
		VerifyFunc: func(password, hash string) error {
			return fmt.Errorf("password verification failed")
		},
	}

	_, err1 := newLoginUseCase(unknownRepo, &mockPasswordVerifier{}).Execute(context.Background(),
		LoginCommand{Email: "x@example.com", Password: "p"})
	_, err2 := newLoginUseCase(wrongPassRepo, failVerifier).Execute(context.Background(),
		LoginCommand{Email: "cliente@example.com", Password: "errada"})

	require.Error(t, err1)
	require.Error(t, err2)

	app1 := appErrors.GetAppError(err1)
	app2 := appErrors.GetAppError(err2)
	require.NotNil(t, app1)
	require.NotNil(t, app2)
	assert.Equal(t, app1.Message, app2.Message)
	assert.Equal(t, app1.Code, app2.Code)
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return testUser(t, false), nil
		},
	}

	_, err := newLoginUseCase(repo, &mockPasswordVerifier{}).Execute(context.Background(),
		LoginCommand{Email: "cliente@example.com", Password: "senha"})
	require.Error(t, err)
	app := appErrors.GetAppError(err)
	require.NotNil(t, app)
	assert.Equal(t, appErrors.ErrorTypeUnauthorized, app.Type)
}

func TestLoginValidation(t *testing.T) {
	uc := newLoginUseCase(&mockUserRepository{}, &mockPasswordVerifier{})

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "", Password: "x"})
	assert.True(t, appErrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "x@example.com", Password: ""})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestRefreshToken(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", 15, 7)
	uc := NewRefreshTokenUseCase(tokens, logger.NewLogger())

	pair, err := tokens.Generate(7, authorization.RoleClient)
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: pair.AccessToken})
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{})
	require.Error(t, err)
}
