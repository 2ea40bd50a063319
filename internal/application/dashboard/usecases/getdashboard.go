package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/domain/partrequest"
	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/shared/biztime"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

// openTicketStatuses covers every non-terminal ticket status.
var openTicketStatuses = []valueobjects.TicketStatus{
	valueobjects.StatusOpen,
	valueobjects.StatusTriage,
	valueobjects.StatusWaiting,
	valueobjects.StatusQuote,
	valueobjects.StatusSent,
}

var openRequestStatuses = []partrequest.Status{
	partrequest.StatusOpen,
	partrequest.StatusAnalysis,
	partrequest.StatusQuoted,
}

type DashboardResult struct {
	MachineCount     int64
	OpenTickets      int64
	OpenPartRequests int64
}

// GetDashboardUseCase builds the portal landing counters for a customer.
type GetDashboardUseCase struct {
	machineRepo machine.Repository
	ticketRepo  ticket.Repository
	requestRepo partrequest.Repository
	logger      logger.Interface
}

func NewGetDashboardUseCase(
	machineRepo machine.Repository,
	ticketRepo ticket.Repository,
	requestRepo partrequest.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		machineRepo: machineRepo,
		ticketRepo:  ticketRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, ownerID uint) (*DashboardResult, error) {
	machines, err := uc.machineRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	tickets, err := uc.ticketRepo.CountByOwnerAndStatuses(ctx, ownerID, openTicketStatuses)
	if err != nil {
		return nil, err
	}
	requests, err := uc.requestRepo.CountByOwnerAndStatuses(ctx, ownerID, openRequestStatuses)
	if err != nil {
		return nil, err
	}

	return &DashboardResult{
		MachineCount:     machines,
		OpenTickets:      tickets,
		OpenPartRequests: requests,
	}, nil
}

type AdminDashboardResult struct {
	OpenTickets      int64
	OpenPartRequests int64
	// TicketsToday counts tickets opened during the current business day.
	TicketsToday int64
}

// GetAdminDashboardUseCase builds the back-office landing counters.
type GetAdminDashboardUseCase struct {
	ticketRepo  ticket.Repository
	requestRepo partrequest.Repository
	logger      logger.Interface
}

func NewGetAdminDashboardUseCase(
	ticketRepo ticket.Repository,
	requestRepo partrequest.Repository,
	logger logger.Interface,
) *GetAdminDashboardUseCase {
	return &GetAdminDashboardUseCase{
		ticketRepo:  ticketRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetAdminDashboardUseCase) Execute(ctx context.Context) (*AdminDashboardResult, error) {
	tickets, err := uc.ticketRepo.CountByStatuses(ctx, openTicketStatuses)
	if err != nil {
		return nil, err
	}
	requests, err := uc.requestRepo.CountByStatuses(ctx, openRequestStatuses)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	today, err := uc.ticketRepo.CountCreatedBetween(ctx, biztime.StartOfDay(now), biztime.EndOfDay(now))
	if err != nil {
		return nil, err
	}

	return &AdminDashboardResult{
		OpenTickets:      tickets,
		OpenPartRequests: requests,
		TicketsToday:     today,
	}, nil
}
