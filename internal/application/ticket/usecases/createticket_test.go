package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

func ownedMachine(t *testing.T, id, ownerID uint) *machine.Machine {
	t.Helper()
	m, err := machine.ReconstructMachine(id, ownerID, 5, "SN-001", "Santa Cruz do Sul", "RS", nil, "", time.Now(), time.Now())
	require.NoError(t, err)
	return m
}

func activeSymptom(t *testing.T, id uint, category catalog.Category) *catalog.Symptom {
	t.Helper()
	s, err := catalog.ReconstructSymptom(id, "Não liga", category, true, time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func newCreateTicketUseCase(
	ticketRepo *mockTicketRepository,
	mediaRepo *mockMediaRepository,
	machineRepo *mockMachineRepository,
	symptomRepo *mockSymptomRepository,
	store *mockMediaStore,
) *CreateTicketUseCase {
	return NewCreateTicketUseCase(ticketRepo, mediaRepo, machineRepo, symptomRepo, &mockTxManager{}, store, logger.NewLogger())
}

func TestCreateTicket(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(11)
		},
	}
	var createdMedia []*ticket.Media
	mediaRepo := &mockMediaRepository{
		CreateFunc: func(ctx context.Context, media *ticket.Media) error {
			createdMedia = append(createdMedia, media)
			return nil
		},
	}
	machineRepo := &mockMachineRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
			return ownedMachine(t, id, ownerID), nil
		},
	}
	store := &mockMediaStore{}

	uc := newCreateTicketUseCase(ticketRepo, mediaRepo, machineRepo, &mockSymptomRepository{}, store)

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     3,
		MachineID:   1,
		Category:    "CORTE",
		Description: "máquina parou de cortar",
		Media: []MediaUpload{
			{OriginalName: "foto.jpg", ContentType: "image/jpeg", SizeBytes: 1024, Reader: strings.NewReader("x")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), result.TicketID)
	assert.Equal(t, "OPEN", result.Status)
	assert.Equal(t, "MEDIUM", result.Priority)
	require.Len(t, createdMedia, 1)
	assert.Equal(t, uint(11), createdMedia[0].TicketID())
	assert.Empty(t, store.removed)
}

func TestCreateTicketWithPriority(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(12)
		},
	}
	machineRepo := &mockMachineRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
			return ownedMachine(t, id, ownerID), nil
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockMediaRepository{}, machineRepo, &mockSymptomRepository{}, &mockMediaStore{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     3,
		MachineID:   1,
		Category:    "CORTE",
		Description: "máquina parada, produção travada",
		Priority:    "HIGH",
	})
	require.NoError(t, err)
	assert.Equal(t, "HIGH", result.Priority)
	require.NotNil(t, saved)
	assert.Equal(t, valueobjects.PriorityHigh, saved.Priority())
}

func TestCreateTicketInvalidPriority(t *testing.T) {
	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockMediaRepository{}, &mockMachineRepository{}, &mockSymptomRepository{}, &mockMediaStore{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     3,
		MachineID:   1,
		Category:    "CORTE",
		Description: "x",
		Priority:    "URGENTE",
	})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestCreateTicketWrongOwner(t *testing.T) {
	machineRepo := &mockMachineRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
			return nil, appErrors.NewNotFoundError("machine not found")
		},
	}

	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockMediaRepository{}, machineRepo, &mockSymptomRepository{}, &mockMediaStore{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     99,
		MachineID:   1,
		Category:    "CORTE",
		Description: "x",
	})
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestCreateTicketSymptomCategoryMismatch(t *testing.T) {
	machineRepo := &mockMachineRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
			return ownedMachine(t, id, ownerID), nil
		},
	}
	symptomRepo := &mockSymptomRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Symptom, error) {
			return activeSymptom(t, id, catalog.CategoryEletrica), nil
		},
	}

	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockMediaRepository{}, machineRepo, symptomRepo, &mockMediaStore{})

	symptomID := uint(7)
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     3,
		MachineID:   1,
		Category:    "CORTE",
		SymptomID:   &symptomID,
		Description: "x",
	})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestCreateTicketTooManyAttachments(t *testing.T) {
	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockMediaRepository{}, &mockMachineRepository{}, &mockSymptomRepository{}, &mockMediaStore{})

	media := make([]MediaUpload, ticket.MaxMediaPerTicket+1)
	for i := range media {
		media[i] = MediaUpload{OriginalName: "f.jpg", ContentType: "image/jpeg", SizeBytes: 1, Reader: strings.NewReader("x")}
	}

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     3,
		MachineID:   1,
		Category:    "CORTE",
		Description: "x",
		Media:       media,
	})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestCreateTicketUnsupportedMediaType(t *testing.T) {
	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockMediaRepository{}, &mockMachineRepository{}, &mockSymptomRepository{}, &mockMediaStore{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     3,
		MachineID:   1,
		Category:    "CORTE",
		Description: "x",
		Media: []MediaUpload{
			{OriginalName: "script.exe", ContentType: "application/octet-stream", SizeBytes: 1, Reader: strings.NewReader("x")},
		},
	})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestCreateTicketRollbackRemovesFiles(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return appErrors.NewInternalError("insert failed")
		},
	}
	machineRepo := &mockMachineRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
			return ownedMachine(t, id, ownerID), nil
		},
	}
	store := &mockMediaStore{}

	uc := newCreateTicketUseCase(ticketRepo, &mockMediaRepository{}, machineRepo, &mockSymptomRepository{}, store)

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     3,
		MachineID:   1,
		Category:    "CORTE",
		Description: "x",
		Media: []MediaUpload{
			{OriginalName: "foto.jpg", ContentType: "image/jpeg", SizeBytes: 1024, Reader: strings.NewReader("x")},
		},
	})
	require.Error(t, err)
	assert.Len(t, store.removed, 1)
}
