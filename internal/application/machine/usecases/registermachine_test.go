package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

func activeModel(t *testing.T, id uint) *catalog.MachineModel {
	t.Helper()
	model, err := catalog.ReconstructMachineModel(id, "Picador GF-300", catalog.CategoryCorte, "", true, time.Now(), time.Now())
	require.NoError(t, err)
	return model
}

func inactiveModel(t *testing.T, id uint) *catalog.MachineModel {
	t.Helper()
	model, err := catalog.ReconstructMachineModel(id, "Picador GF-300", catalog.CategoryCorte, "", false, time.Now(), time.Now())
	require.NoError(t, err)
	return model
}

func TestRegisterMachine(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			return activeModel(t, id), nil
		},
	}
	var saved *machine.Machine
	machineRepo := &mockMachineRepository{
		CreateFunc: func(ctx context.Context, m *machine.Machine) error {
			saved = m
			return m.SetID(42)
		},
	}

	uc := NewRegisterMachineUseCase(machineRepo, modelRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterMachineCommand{
		OwnerID:      3,
		ModelID:      5,
		SerialNumber: "GF300-0917",
		City:         "Santa Cruz do Sul",
		UF:           "rs",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), result.MachineID)
	require.NotNil(t, saved)
	assert.Equal(t, "RS", saved.UF())
}

func TestRegisterMachineBadUF(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			return activeModel(t, id), nil
		},
	}

	uc := NewRegisterMachineUseCase(&mockMachineRepository{}, modelRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterMachineCommand{
		OwnerID: 3,
		ModelID: 5,
		UF:      "RGS",
	})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestRegisterMachineInactiveModel(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			return inactiveModel(t, id), nil
		},
	}

	uc := NewRegisterMachineUseCase(&mockMachineRepository{}, modelRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterMachineCommand{OwnerID: 3, ModelID: 5})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestRegisterMachineUnknownModel(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			return nil, appErrors.NewNotFoundError("machine model not found")
		},
	}

	uc := NewRegisterMachineUseCase(&mockMachineRepository{}, modelRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterMachineCommand{OwnerID: 3, ModelID: 99})
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestRegisterMachineValidation(t *testing.T) {
	uc := NewRegisterMachineUseCase(&mockMachineRepository{}, &mockMachineModelRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterMachineCommand{ModelID: 5})
	assert.True(t, appErrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), RegisterMachineCommand{OwnerID: 3})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestRegisterMachineFuturePurchaseDate(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			return activeModel(t, id), nil
		},
	}

	uc := NewRegisterMachineUseCase(&mockMachineRepository{}, modelRepo, logger.NewLogger())

	future := time.Now().Add(48 * time.Hour)
	_, err := uc.Execute(context.Background(), RegisterMachineCommand{
		OwnerID:      3,
		ModelID:      5,
		PurchaseDate: &future,
	})
	assert.True(t, appErrors.IsValidationError(err))
}
