package usecases

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
)

type mockTicketRepository struct {
	CreateFunc                  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                  func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc                func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByIDAndOwnerFunc        func(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error)
	ListByOwnerFunc             func(ctx context.Context, ownerID uint, offset, limit int) ([]*ticket.Ticket, int64, error)
	ListFunc                    func(ctx context.Context, filters ticket.ListFilters, offset, limit int) ([]*ticket.Ticket, int64, error)
	CountByOwnerAndStatusesFunc func(ctx context.Context, ownerID uint, statuses []valueobjects.TicketStatus) (int64, error)
	CountByStatusesFunc         func(ctx context.Context, statuses []valueobjects.TicketStatus) (int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]*ticket.Ticket, int64, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.ListFilters, offset, limit int) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByOwnerAndStatuses(ctx context.Context, ownerID uint, statuses []valueobjects.TicketStatus) (int64, error) {
	if m.CountByOwnerAndStatusesFunc != nil {
		return m.CountByOwnerAndStatusesFunc(ctx, ownerID, statuses)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByStatuses(ctx context.Context, statuses []valueobjects.TicketStatus) (int64, error) {
	if m.CountByStatusesFunc != nil {
		return m.CountByStatusesFunc(ctx, statuses)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}

type mockMediaRepository struct {
	CreateFunc        func(ctx context.Context, media *ticket.Media) error
	FindByIDFunc      func(ctx context.Context, id uint) (*ticket.Media, error)
	ListByTicketFunc  func(ctx context.Context, ticketID uint) ([]*ticket.Media, error)
	CountByTicketFunc func(ctx context.Context, ticketID uint) (int64, error)
}

func (m *mockMediaRepository) Create(ctx context.Context, media *ticket.Media) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, media)
	}
	return nil
}

func (m *mockMediaRepository) FindByID(ctx context.Context, id uint) (*ticket.Media, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMediaRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockMediaRepository) CountByTicket(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountByTicketFunc != nil {
		return m.CountByTicketFunc(ctx, ticketID)
	}
	return 0, nil
}

type mockMessageRepository struct {
	CreateFunc       func(ctx context.Context, message *ticket.Message) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
}

func (m *mockMessageRepository) Create(ctx context.Context, message *ticket.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return nil
}

func (m *mockMessageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
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

type mockSymptomRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*catalog.Symptom, error)
}

func (m *mockSymptomRepository) Create(ctx context.Context, s *catalog.Symptom) error { return nil }
func (m *mockSymptomRepository) Update(ctx context.Context, s *catalog.Symptom) error { return nil }
func (m *mockSymptomRepository) FindByID(ctx context.Context, id uint) (*catalog.Symptom, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSymptomRepository) ListActive(ctx context.Context) ([]*catalog.Symptom, error) {
	return nil, nil
}

func (m *mockSymptomRepository) ListActiveByCategory(ctx context.Context, category catalog.Category) ([]*catalog.Symptom, error) {
	return nil, nil
}

func (m *mockSymptomRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Symptom, int64, error) {
	return nil, 0, nil
}

type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockMediaStore struct {
	SaveFunc   func(subdir, prefix, originalName string, r io.Reader) (string, error)
	RemoveFunc func(relPath string) error
	OpenFunc   func(relPath string) (*os.File, error)

	saved   []string
	removed []string
}

func (m *mockMediaStore) Save(subdir, prefix, originalName string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(subdir, prefix, originalName, r)
	}
	path := subdir + "/" + prefix + "_" + originalName
	m.saved = append(m.saved, path)
	return path, nil
}

func (m *mockMediaStore) Remove(relPath string) error {
	m.removed = append(m.removed, relPath)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(relPath)
	}
	return nil
}

func (m *mockMediaStore) Open(relPath string) (*os.File, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(relPath)
	}
	return nil, os.ErrNotExist
}
