package usecases

import "context"

type RegisterMachineExecutor interface {
	Execute(ctx context.Context, cmd RegisterMachineCommand) (*RegisterMachineResult, error)
}

type UpdateMachineExecutor interface {
	Execute(ctx context.Context, cmd UpdateMachineCommand) (*UpdateMachineResult, error)
}

type ListMyMachinesExecutor interface {
	Execute(ctx context.Context, ownerID uint) (*ListMyMachinesResult, error)
}

type ListMachinesExecutor interface {
	Execute(ctx context.Context, query ListMachinesQuery) (*ListMachinesResult, error)
}
