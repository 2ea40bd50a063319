package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/domain/partrequest"
)

type mockPartRequestRepository struct {
	CreateFunc                  func(ctx context.Context, request *partrequest.PartRequest) error
	UpdateFunc                  func(ctx context.Context, request *partrequest.PartRequest) error
	FindByIDFunc                func(ctx context.Context, id uint) (*partrequest.PartRequest, error)
	FindByIDAndOwnerFunc        func(ctx context.Context, id, ownerID uint) (*partrequest.PartRequest, error)
	ListByOwnerFunc             func(ctx context.Context, ownerID uint, offset, limit int) ([]*partrequest.PartRequest, int64, error)
	ListFunc                    func(ctx context.Context, filters partrequest.ListFilters, offset, limit int) ([]*partrequest.PartRequest, int64, error)
	CountByOwnerAndStatusesFunc func(ctx context.Context, ownerID uint, statuses []partrequest.Status) (int64, error)
	CountByStatusesFunc         func(ctx context.Context, statuses []partrequest.Status) (int64, error)
}

func (m *mockPartRequestRepository) Create(ctx context.Context, request *partrequest.PartRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, request)
	}
	return nil
}

func (m *mockPartRequestRepository) Update(ctx context.Context, request *partrequest.PartRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, request)
	}
	return nil
}

func (m *mockPartRequestRepository) FindByID(ctx context.Context, id uint) (*partrequest.PartRequest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPartRequestRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*partrequest.PartRequest, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockPartRequestRepository) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]*partrequest.PartRequest, int64, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockPartRequestRepository) List(ctx context.Context, filters partrequest.ListFilters, offset, limit int) ([]*partrequest.PartRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockPartRequestRepository) CountByOwnerAndStatuses(ctx context.Context, ownerID uint, statuses []partrequest.Status) (int64, error) {
	if m.CountByOwnerAndStatusesFunc != nil {
		return m.CountByOwnerAndStatusesFunc(ctx, ownerID, statuses)
	}
	return 0, nil
}

func (m *mockPartRequestRepository) CountByStatuses(ctx context.Context, statuses []partrequest.Status) (int64, error) {
	if m.CountByStatusesFunc != nil {
		return m.CountByStatusesFunc(ctx, statuses)
	}
	return 0, nil
}

type mockMachineRepository struct {
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uint) (*machine.Machine, error)
}

func (m *mockMachineRepository) Create(ctx context.Context, mc *machine.Machine) error { return nil }
func (m *mockMachineRepository) Update(ctx context.Context, mc *machine.Machine) error { return nil }
func (m *mockMachineRepository) FindByID(ctx context.Context, id uint) (*machine.Machine, error) {
	return nil, nil
}

func (m *mockMachineRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockMachineRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*machine.Machine, error) {
	return nil, nil
}

func (m *mockMachineRepository) List(ctx context.Context, offset, limit int) ([]*machine.Machine, int64, error) {
	return nil, 0, nil
}

func (m *mockMachineRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	return 0, nil
}

type mockPartRepository struct {
	FindByIDFunc                 func(ctx context.Context, id uint) (*catalog.Part, error)
	ListActiveCompatibleWithFunc func(ctx context.Context, modelID uint) ([]*catalog.Part, error)
}

func (m *mockPartRepository) Create(ctx context.Context, p *catalog.Part) error { return nil }
func (m *mockPartRepository) Update(ctx context.Context, p *catalog.Part) error { return nil }
func (m *mockPartRepository) FindByID(ctx context.Context, id uint) (*catalog.Part, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPartRepository) ListActive(ctx context.Context) ([]*catalog.Part, error) {
	return nil, nil
}

func (m *mockPartRepository) ListActiveCompatibleWith(ctx context.Context, modelID uint) ([]*catalog.Part, error) {
	if m.ListActiveCompatibleWithFunc != nil {
		return m.ListActiveCompatibleWithFunc(ctx, modelID)
	}
	return nil, nil
}

func (m *mockPartRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Part, int64, error) {
	return nil, 0, nil
}
