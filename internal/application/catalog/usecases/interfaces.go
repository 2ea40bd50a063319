package usecases

import "context"

type SaveMachineModelExecutor interface {
	Execute(ctx context.Context, cmd SaveMachineModelCommand) (*SaveMachineModelResult, error)
}

type ListMachineModelsExecutor interface {
	Execute(ctx context.Context, query ListMachineModelsQuery) (*ListMachineModelsResult, error)
}

type SaveSymptomExecutor interface {
	Execute(ctx context.Context, cmd SaveSymptomCommand) (*SaveSymptomResult, error)
}

type ListSymptomsExecutor interface {
	Execute(ctx context.Context, query ListSymptomsQuery) (*ListSymptomsResult, error)
}

type SavePartExecutor interface {
	Execute(ctx context.Context, cmd SavePartCommand) (*SavePartResult, error)
}

type ListPartsExecutor interface {
	Execute(ctx context.Context, query ListPartsQuery) (*ListPartsResult, error)
}

type CreateManualExecutor interface {
	Execute(ctx context.Context, cmd CreateManualCommand) (*CreateManualResult, error)
}

type SetManualActiveExecutor interface {
	Execute(ctx context.Context, cmd SetManualActiveCommand) error
}

type ListManualsExecutor interface {
	Execute(ctx context.Context, query ListManualsQuery) (*ListManualsResult, error)
}
