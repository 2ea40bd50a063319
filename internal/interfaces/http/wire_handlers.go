package http

import (
	"github.com/giftex-inc/giftex/internal/interfaces/http/handlers"
	adminHandlers "github.com/giftex-inc/giftex/internal/interfaces/http/handlers/admin"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler        *handlers.AuthHandler
	publicHandler      *handlers.PublicHandler
	machineHandler     *handlers.MachineHandler
	ticketHandler      *handlers.TicketHandler
	partRequestHandler *handlers.PartRequestHandler
	manualHandler      *handlers.ManualHandler
	dashboardHandler   *handlers.DashboardHandler
	catalogHandler     *handlers.CatalogHandler

	adminCatalogHandler     *adminHandlers.CatalogHandler
	adminManualHandler      *adminHandlers.ManualHandler
	adminTicketHandler      *adminHandlers.TicketHandler
	adminPartRequestHandler *adminHandlers.PartRequestHandler
	adminShowcaseHandler    *adminHandlers.ShowcaseHandler
	adminUserHandler        *adminHandlers.UserHandler
	adminSiteSettingHandler *adminHandlers.SiteSettingHandler
	adminDashboardHandler   *adminHandlers.DashboardHandler
}

func (c *Container) initHandlers() {
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(
			ucs.loginUC, ucs.refreshTokenUC, ucs.changePasswordUC,
			c.repos.userRepo, &c.cfg.Auth, c.log,
		),
		publicHandler: handlers.NewPublicHandler(
			ucs.listShowcaseUC, ucs.listFeaturedUC, ucs.getShowcaseUC,
			ucs.requestQuoteUC, ucs.getSiteContextUC, c.log,
		),
		machineHandler: handlers.NewMachineHandler(
			ucs.registerMachineUC, ucs.updateMachineUC, ucs.listMyMachinesUC, c.log,
		),
		ticketHandler: handlers.NewTicketHandler(
			ucs.createTicketUC, ucs.getTicketDetailUC, ucs.listMyTicketsUC,
			ucs.addMessageUC, ucs.getTicketMediaUC, c.cfg.Media.MaxUploadMB, c.log,
		),
		partRequestHandler: handlers.NewPartRequestHandler(
			ucs.createPartRequestUC, ucs.getPartRequestUC,
			ucs.listMyPartRequestsUC, ucs.listSelectablePartsUC, c.log,
		),
		manualHandler:    handlers.NewManualHandler(ucs.listActiveManualsUC, ucs.downloadManualUC, c.log),
		dashboardHandler: handlers.NewDashboardHandler(ucs.getDashboardUC, c.log),
		catalogHandler:   handlers.NewCatalogHandler(ucs.listModelsUC, ucs.listSymptomsUC, c.log),

		adminCatalogHandler: adminHandlers.NewCatalogHandler(
			ucs.saveModelUC, ucs.listModelsUC, ucs.saveSymptomUC,
			ucs.listSymptomsUC, ucs.savePartUC, ucs.listPartsUC, c.log,
		),
		adminManualHandler: adminHandlers.NewManualHandler(
			ucs.createManualUC, ucs.setManualActiveUC, ucs.listManualsUC, c.log,
		),
		adminTicketHandler: adminHandlers.NewTicketHandler(
			ucs.listTicketsUC, ucs.changeTicketStatusUC, ucs.changeTicketPriorityUC, c.log,
		),
		adminPartRequestHandler: adminHandlers.NewPartRequestHandler(
			ucs.listPartRequestsUC, ucs.changePartRequestStatusUC, c.log,
		),
		adminShowcaseHandler: adminHandlers.NewShowcaseHandler(
			ucs.saveShowcaseUC, ucs.listAllShowcaseUC, c.log,
		),
		adminUserHandler: adminHandlers.NewUserHandler(
			ucs.createUserUC, ucs.listUsersUC, ucs.setUserActiveUC, c.log,
		),
		adminSiteSettingHandler: adminHandlers.NewSiteSettingHandler(
			ucs.getSiteContextUC, ucs.updateSiteSettingsUC, c.log,
		),
		adminDashboardHandler: adminHandlers.NewDashboardHandler(
			ucs.getAdminDashboardUC, ucs.listMachinesUC, c.log,
		),
	}
}
