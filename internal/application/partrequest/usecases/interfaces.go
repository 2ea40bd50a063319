package usecases

import "context"

type CreatePartRequestExecutor interface {
	Execute(ctx context.Context, cmd CreatePartRequestCommand) (*CreatePartRequestResult, error)
}

type GetPartRequestExecutor interface {
	Execute(ctx context.Context, query GetPartRequestQuery) (*PartRequestDetailResult, error)
}

type ListMyPartRequestsExecutor interface {
	Execute(ctx context.Context, query ListMyPartRequestsQuery) (*ListMyPartRequestsResult, error)
}

type ListPartRequestsExecutor interface {
	Execute(ctx context.Context, query ListPartRequestsQuery) (*ListPartRequestsResult, error)
}

type ListSelectablePartsExecutor interface {
	Execute(ctx context.Context, query ListSelectablePartsQuery) (*ListSelectablePartsResult, error)
}

type ChangePartRequestStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangePartRequestStatusCommand) (*ChangePartRequestStatusResult, error)
}
