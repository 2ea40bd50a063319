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

func ownedMachine(t *testing.T, id, ownerID, modelID uint) *machine.Machine {
	t.Helper()
	m, err := machine.ReconstructMachine(id, ownerID, modelID, "SN-001", "Santa Cruz do Sul", "RS", nil, "", time.Now(), time.Now())
	require.NoError(t, err)
	return m
}

func TestListMyMachinesEnrichesModel(t *testing.T) {
	machineRepo := &mockMachineRepository{
		ListByOwnerFunc: func(ctx context.Context, ownerID uint) ([]*machine.Machine, error) {
			return []*machine.Machine{
				ownedMachine(t, 1, ownerID, 5),
				ownedMachine(t, 2, ownerID, 5),
			}, nil
		},
	}
	lookups := 0
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			lookups++
			return activeModel(t, id), nil
		},
	}

	uc := NewListMyMachinesUseCase(machineRepo, modelRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, result.Machines, 2)
	assert.Equal(t, "Picador GF-300", result.Machines[0].ModelName)
	assert.Equal(t, "CORTE", result.Machines[0].ModelCategory)
	assert.Equal(t, 1, lookups, "shared model should be looked up once")
}

func TestListMyMachinesMissingModel(t *testing.T) {
	machineRepo := &mockMachineRepository{
		ListByOwnerFunc: func(ctx context.Context, ownerID uint) ([]*machine.Machine, error) {
			return []*machine.Machine{ownedMachine(t, 1, ownerID, 9)}, nil
		},
	}
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			return nil, appErrors.NewNotFoundError("machine model not found")
		},
	}

	uc := NewListMyMachinesUseCase(machineRepo, modelRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, result.Machines, 1)
	assert.Empty(t, result.Machines[0].ModelName)
}

func TestUpdateMachineOwnerScoped(t *testing.T) {
	machineRepo := &mockMachineRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
			return nil, appErrors.NewNotFoundError("machine not found")
		},
	}

	uc := NewUpdateMachineUseCase(machineRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateMachineCommand{MachineID: 1, OwnerID: 99})
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestUpdateMachine(t *testing.T) {
	var saved *machine.Machine
	machineRepo := &mockMachineRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
			return ownedMachine(t, id, ownerID, 5), nil
		},
		UpdateFunc: func(ctx context.Context, m *machine.Machine) error {
			saved = m
			return nil
		},
	}

	uc := NewUpdateMachineUseCase(machineRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), UpdateMachineCommand{
		MachineID:    1,
		OwnerID:      3,
		SerialNumber: "SN-002",
		City:         "Venâncio Aires",
		UF:           "rs",
		Notes:        "motor trocado",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), result.MachineID)
	require.NotNil(t, saved)
	assert.Equal(t, "SN-002", saved.SerialNumber())
	assert.Equal(t, "Venâncio Aires", saved.City())
	assert.Equal(t, "RS", saved.UF())
	assert.Equal(t, "motor trocado", saved.Notes())
}

func TestListMachinesPagination(t *testing.T) {
	var gotOffset, gotLimit int
	machineRepo := &mockMachineRepository{
		ListFunc: func(ctx context.Context, offset, limit int) ([]*machine.Machine, int64, error) {
			gotOffset, gotLimit = offset, limit
			return []*machine.Machine{ownedMachine(t, 1, 3, 5)}, 41, nil
		},
	}

	uc := NewListMachinesUseCase(machineRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListMachinesQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 20, gotOffset)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, int64(41), result.Total)

	_, err = uc.Execute(context.Background(), ListMachinesQuery{Page: 0, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, 100, gotLimit)
}
