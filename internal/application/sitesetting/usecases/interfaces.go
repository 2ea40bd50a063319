package usecases

import "context"

type GetSiteContextExecutor interface {
	Execute(ctx context.Context) (*SiteContextResult, error)
}

type UpdateSiteSettingsExecutor interface {
	Execute(ctx context.Context, cmd UpdateSiteSettingsCommand) (*UpdateSiteSettingsResult, error)
}
