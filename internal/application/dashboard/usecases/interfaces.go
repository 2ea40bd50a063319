package usecases

import "context"

type GetDashboardExecutor interface {
	Execute(ctx context.Context, ownerID uint) (*DashboardResult, error)
}

type GetAdminDashboardExecutor interface {
	Execute(ctx context.Context) (*AdminDashboardResult, error)
}
