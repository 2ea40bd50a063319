package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
)

type mockMachineRepository struct {
	CreateFunc           func(ctx context.Context, m *machine.Machine) error
	UpdateFunc           func(ctx context.Context, m *machine.Machine) error
	FindByIDFunc         func(ctx context.Context, id uint) (*machine.Machine, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uint) (*machine.Machine, error)
	ListByOwnerFunc      func(ctx context.Context, ownerID uint) ([]*machine.Machine, error)
	ListFunc             func(ctx context.Context, offset, limit int) ([]*machine.Machine, int64, error)
	CountByOwnerFunc     func(ctx context.Context, ownerID uint) (int64, error)
}

func (m *mockMachineRepository) Create(ctx context.Context, mc *machine.Machine) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mc)
	}
	return nil
}

func (m *mockMachineRepository) Update(ctx context.Context, mc *machine.Machine) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mc)
	}
	return nil
}

func (m *mockMachineRepository) FindByID(ctx context.Context, id uint) (*machine.Machine, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMachineRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockMachineRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*machine.Machine, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockMachineRepository) List(ctx context.Context, offset, limit int) ([]*machine.Machine, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockMachineRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	if m.CountByOwnerFunc != nil {
		return m.CountByOwnerFunc(ctx, ownerID)
	}
	return 0, nil
}

type mockMachineModelRepository struct {
	CreateFunc     func(ctx context.Context, model *catalog.MachineModel) error
	UpdateFunc     func(ctx context.Context, model *catalog.MachineModel) error
	FindByIDFunc   func(ctx context.Context, id uint) (*catalog.MachineModel, error)
	ListActiveFunc func(ctx context.Context) ([]*catalog.MachineModel, error)
	ListFunc       func(ctx context.Context, offset, limit int) ([]*catalog.MachineModel, int64, error)
}

func (m *mockMachineModelRepository) Create(ctx context.Context, model *catalog.MachineModel) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, model)
	}
	return nil
}

func (m *mockMachineModelRepository) Update(ctx context.Context, model *catalog.MachineModel) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, model)
	}
	return nil
}

func (m *mockMachineModelRepository) FindByID(ctx context.Context, id uint) (*catalog.MachineModel, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMachineModelRepository) ListActive(ctx context.Context) ([]*catalog.MachineModel, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockMachineModelRepository) List(ctx context.Context, offset, limit int) ([]*catalog.MachineModel, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}
