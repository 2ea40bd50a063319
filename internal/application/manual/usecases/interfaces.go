package usecases

import "context"

type ListActiveManualsExecutor interface {
	Execute(ctx context.Context) (*ListActiveManualsResult, error)
}

type DownloadManualExecutor interface {
	Execute(ctx context.Context, query DownloadManualQuery) (*ManualFile, error)
}
