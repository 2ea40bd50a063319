package usecases

import "context"

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketDetailExecutor interface {
	Execute(ctx context.Context, query GetTicketDetailQuery) (*TicketDetailResult, error)
}

type ListMyTicketsExecutor interface {
	Execute(ctx context.Context, query ListMyTicketsQuery) (*ListMyTicketsResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error)
}

type ChangeTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*ChangeTicketStatusResult, error)
}

type ChangeTicketPriorityExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketPriorityCommand) (*ChangeTicketPriorityResult, error)
}

type GetTicketMediaExecutor interface {
	Execute(ctx context.Context, query GetTicketMediaQuery) (*TicketMediaFile, error)
}
