package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftex-inc/giftex/internal/domain/user"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

func TestCreateUser(t *testing.T) {
	var created *user.User
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			created = u
			return u.SetID(7)
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Cliente",
		Email:    "  Cliente@Example.COM ",
		Password: "senha-segura",
		Role:     "client",
		Company:  "Fumos do Sul",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	require.NotNil(t, created)
	assert.Equal(t, "cliente@example.com", created.Email())
	assert.Equal(t, "hashed:senha-segura", created.PasswordHash())
	assert.Equal(t, authorization.RoleClient, created.Role())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Cliente",
		Email:    "cliente@example.com",
		Password: "senha-segura",
		Role:     "client",
	})
	assert.True(t, appErrors.IsConflictError(err))
}

func TestCreateUserValidation(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Name: "X", Email: "x@example.com", Password: "curta", Role: "client",
	})
	assert.True(t, appErrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateUserCommand{
		Name: "X", Email: "x@example.com", Password: "senha-segura", Role: "gerente",
	})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestChangePassword(t *testing.T) {
	u, err := user.NewUser("Cliente", "cliente@example.com", "old-hash", authorization.RoleClient, "", "")
	require.NoError(t, err)
	require.NoError(t, u.SetID(7))

	var saved *user.User
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, updated *user.User) error {
			saved = updated
			return nil
		},
	}

	uc := NewChangePasswordUseCase(repo, &mockHasher{}, &mockVerifier{}, logger.NewLogger())

	err = uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          7,
		CurrentPassword: "antiga",
		NewPassword:     "nova-senha-123",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "hashed:nova-senha-123", saved.PasswordHash())
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	u, err := user.NewUser("Cliente", "cliente@example.com", "old-hash", authorization.RoleClient, "", "")
	require.NoError(t, err)
	require.NoError(t, u.SetID(7))

	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
	}
	verifier := &mockVerifier{
		VerifyFunc: func(password, hash string) error {
			return fmt.Errorf("password verification failed")
		},
	}

	uc := NewChangePasswordUseCase(repo, &mockHasher{}, verifier, logger.NewLogger())

	err = uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          7,
		CurrentPassword: "errada",
		NewPassword:     "nova-senha-123",
	})
	require.Error(t, err)
	app := appErrors.GetAppError(err)
	require.NotNil(t, app)
	assert.Equal(t, appErrors.ErrorTypeUnauthorized, app.Type)
}

func TestSetUserActive(t *testing.T) {
	u, err := user.NewUser("Cliente", "cliente@example.com", "hash", authorization.RoleClient, "", "")
	require.NoError(t, err)
	require.NoError(t, u.SetID(7))

	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
	}

	uc := NewSetUserActiveUseCase(repo, logger.NewLogger())

	require.NoError(t, uc.Execute(context.Background(), SetUserActiveCommand{UserID: 7, Active: false}))
	assert.False(t, u.IsActive())

	require.NoError(t, uc.Execute(context.Background(), SetUserActiveCommand{UserID: 7, Active: true}))
	assert.True(t, u.IsActive())
}
