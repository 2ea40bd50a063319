package usecases

import "context"

type ListShowcaseExecutor interface {
	Execute(ctx context.Context, query ListShowcaseQuery) (*ListShowcaseResult, error)
}

type ListFeaturedExecutor interface {
	Execute(ctx context.Context, limit int) (*ListShowcaseResult, error)
}

type GetShowcaseMachineExecutor interface {
	Execute(ctx context.Context, slug string) (*ShowcaseDetailResult, error)
}

type RequestQuoteExecutor interface {
	Execute(ctx context.Context, cmd RequestQuoteCommand) (*RequestQuoteResult, error)
}

type SaveShowcaseMachineExecutor interface {
	Execute(ctx context.Context, cmd SaveShowcaseMachineCommand) (*SaveShowcaseMachineResult, error)
}

type ListAllShowcaseExecutor interface {
	Execute(ctx context.Context, query ListAllShowcaseQuery) (*ListAllShowcaseResult, error)
}
