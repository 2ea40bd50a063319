package http

import (
	authUsecases "github.com/giftex-inc/giftex/internal/application/auth/usecases"
	catalogUsecases "github.com/giftex-inc/giftex/internal/application/catalog/usecases"
	dashboardUsecases "github.com/giftex-inc/giftex/internal/application/dashboard/usecases"
	machineUsecases "github.com/giftex-inc/giftex/internal/application/machine/usecases"
	manualUsecases "github.com/giftex-inc/giftex/internal/application/manual/usecases"
	partrequestUsecases "github.com/giftex-inc/giftex/internal/application/partrequest/usecases"
	showcaseUsecases "github.com/giftex-inc/giftex/internal/application/showcase/usecases"
	sitesettingUsecases "github.com/giftex-inc/giftex/internal/application/sitesetting/usecases"
	ticketUsecases "github.com/giftex-inc/giftex/internal/application/ticket/usecases"
	userUsecases "github.com/giftex-inc/giftex/internal/application/user/usecases"
	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth
	loginUC        *authUsecases.LoginUseCase
	refreshTokenUC *authUsecases.RefreshTokenUseCase

	// User administration
	createUserUC     *userUsecases.CreateUserUseCase
	listUsersUC      *userUsecases.ListUsersUseCase
	setUserActiveUC  *userUsecases.SetUserActiveUseCase
	changePasswordUC *userUsecases.ChangePasswordUseCase

	// Machine registry
	registerMachineUC *machineUsecases.RegisterMachineUseCase
	updateMachineUC   *machineUsecases.UpdateMachineUseCase
	listMyMachinesUC  *machineUsecases.ListMyMachinesUseCase
	listMachinesUC    *machineUsecases.ListMachinesUseCase

	// Tickets
	createTicketUC         *ticketUsecases.CreateTicketUseCase
	getTicketDetailUC      *ticketUsecases.GetTicketDetailUseCase
	listMyTicketsUC        *ticketUsecases.ListMyTicketsUseCase
	listTicketsUC          *ticketUsecases.ListTicketsUseCase
	addMessageUC           *ticketUsecases.AddMessageUseCase
	changeTicketStatusUC   *ticketUsecases.ChangeTicketStatusUseCase
	changeTicketPriorityUC *ticketUsecases.ChangeTicketPriorityUseCase
	getTicketMediaUC       *ticketUsecases.GetTicketMediaUseCase

	// Part requests
	createPartRequestUC       *partrequestUsecases.CreatePartRequestUseCase
	getPartRequestUC          *partrequestUsecases.GetPartRequestUseCase
	listMyPartRequestsUC      *partrequestUsecases.ListMyPartRequestsUseCase
	listPartRequestsUC        *partrequestUsecases.ListPartRequestsUseCase
	listSelectablePartsUC     *partrequestUsecases.ListSelectablePartsUseCase
	changePartRequestStatusUC *partrequestUsecases.ChangePartRequestStatusUseCase

	// Manuals
	listActiveManualsUC *manualUsecases.ListActiveManualsUseCase
	downloadManualUC    *manualUsecases.DownloadManualUseCase

	// Dashboard
	getDashboardUC      *dashboardUsecases.GetDashboardUseCase
	getAdminDashboardUC *dashboardUsecases.GetAdminDashboardUseCase

	// Catalog administration
	saveModelUC       *catalogUsecases.SaveMachineModelUseCase
	listModelsUC      *catalogUsecases.ListMachineModelsUseCase
	saveSymptomUC     *catalogUsecases.SaveSymptomUseCase
	listSymptomsUC    *catalogUsecases.ListSymptomsUseCase
	savePartUC        *catalogUsecases.SavePartUseCase
	listPartsUC       *catalogUsecases.ListPartsUseCase
	createManualUC    *catalogUsecases.CreateManualUseCase
	setManualActiveUC *catalogUsecases.SetManualActiveUseCase
	listManualsUC     *catalogUsecases.ListManualsUseCase

	// Showcase
	listShowcaseUC    *showcaseUsecases.ListShowcaseUseCase
	listFeaturedUC    *showcaseUsecases.ListFeaturedUseCase
	getShowcaseUC     *showcaseUsecases.GetShowcaseMachineUseCase
	requestQuoteUC    *showcaseUsecases.RequestQuoteUseCase
	saveShowcaseUC    *showcaseUsecases.SaveShowcaseMachineUseCase
	listAllShowcaseUC *showcaseUsecases.ListAllShowcaseUseCase

	// Site settings
	getSiteContextUC     *sitesettingUsecases.GetSiteContextUseCase
	updateSiteSettingsUC *sitesettingUsecases.UpdateSiteSettingsUseCase
}

func (c *Container) siteDefaults() sitesetting.Defaults {
	return sitesetting.Defaults{
		SiteName:           c.cfg.Site.Name,
		Tagline:            c.cfg.Site.Tagline,
		WhatsAppNumber:     c.cfg.Site.WhatsAppNumber,
		ContactPhone:       c.cfg.Site.ContactPhone,
		ContactEmail:       c.cfg.Site.ContactEmail,
		AddressText:        c.cfg.Site.AddressText,
		GoogleMapsEmbedURL: c.cfg.Site.GoogleMapsEmbedURL,
	}
}

func (c *Container) initUseCases() {
	r := c.repos
	defaults := c.siteDefaults()

	c.ucs = &allUseCases{
		loginUC:        authUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtSvc, c.log),
		refreshTokenUC: authUsecases.NewRefreshTokenUseCase(c.jwtSvc, c.log),

		createUserUC:     userUsecases.NewCreateUserUseCase(r.userRepo, c.hasher, c.log),
		listUsersUC:      userUsecases.NewListUsersUseCase(r.userRepo, c.log),
		setUserActiveUC:  userUsecases.NewSetUserActiveUseCase(r.userRepo, c.log),
		changePasswordUC: userUsecases.NewChangePasswordUseCase(r.userRepo, c.hasher, c.hasher, c.log),

		registerMachineUC: machineUsecases.NewRegisterMachineUseCase(r.machineRepo, r.modelRepo, c.log),
		updateMachineUC:   machineUsecases.NewUpdateMachineUseCase(r.machineRepo, c.log),
		listMyMachinesUC:  machineUsecases.NewListMyMachinesUseCase(r.machineRepo, r.modelRepo, c.log),
		listMachinesUC:    machineUsecases.NewListMachinesUseCase(r.machineRepo, c.log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(
			r.ticketRepo, r.ticketMediaRepo, r.machineRepo, r.symptomRepo,
			c.txManager, c.mediaStore, c.log,
		),
		getTicketDetailUC:      ticketUsecases.NewGetTicketDetailUseCase(r.ticketRepo, r.ticketMediaRepo, r.ticketMessageRepo, c.log),
		listMyTicketsUC:        ticketUsecases.NewListMyTicketsUseCase(r.ticketRepo, c.log),
		listTicketsUC:          ticketUsecases.NewListTicketsUseCase(r.ticketRepo, c.log),
		addMessageUC:           ticketUsecases.NewAddMessageUseCase(r.ticketRepo, r.ticketMessageRepo, c.log),
		changeTicketStatusUC:   ticketUsecases.NewChangeTicketStatusUseCase(r.ticketRepo, c.log),
		changeTicketPriorityUC: ticketUsecases.NewChangeTicketPriorityUseCase(r.ticketRepo, c.log),
		getTicketMediaUC:       ticketUsecases.NewGetTicketMediaUseCase(r.ticketRepo, r.ticketMediaRepo, c.mediaStore, c.log),

		createPartRequestUC:       partrequestUsecases.NewCreatePartRequestUseCase(r.partRequestRepo, r.machineRepo, r.partRepo, c.log),
		getPartRequestUC:          partrequestUsecases.NewGetPartRequestUseCase(r.partRequestRepo, c.log),
		listMyPartRequestsUC:      partrequestUsecases.NewListMyPartRequestsUseCase(r.partRequestRepo, c.log),
		listPartRequestsUC:        partrequestUsecases.NewListPartRequestsUseCase(r.partRequestRepo, c.log),
		listSelectablePartsUC:     partrequestUsecases.NewListSelectablePartsUseCase(r.machineRepo, r.partRepo, c.log),
		changePartRequestStatusUC: partrequestUsecases.NewChangePartRequestStatusUseCase(r.partRequestRepo, c.log),

		listActiveManualsUC: manualUsecases.NewListActiveManualsUseCase(r.manualRepo, c.log),
		downloadManualUC:    manualUsecases.NewDownloadManualUseCase(r.manualRepo, c.mediaStore, c.log),

		getDashboardUC:      dashboardUsecases.NewGetDashboardUseCase(r.machineRepo, r.ticketRepo, r.partRequestRepo, c.log),
		getAdminDashboardUC: dashboardUsecases.NewGetAdminDashboardUseCase(r.ticketRepo, r.partRequestRepo, c.log),

		saveModelUC:       catalogUsecases.NewSaveMachineModelUseCase(r.modelRepo, c.log),
		listModelsUC:      catalogUsecases.NewListMachineModelsUseCase(r.modelRepo, c.log),
		saveSymptomUC:     catalogUsecases.NewSaveSymptomUseCase(r.symptomRepo, c.log),
		listSymptomsUC:    catalogUsecases.NewListSymptomsUseCase(r.symptomRepo, c.log),
		savePartUC:        catalogUsecases.NewSavePartUseCase(r.partRepo, r.modelRepo, c.log),
		listPartsUC:       catalogUsecases.NewListPartsUseCase(r.partRepo, c.log),
		createManualUC:    catalogUsecases.NewCreateManualUseCase(r.manualRepo, r.modelRepo, c.mediaStore, c.log),
		setManualActiveUC: catalogUsecases.NewSetManualActiveUseCase(r.manualRepo, c.log),
		listManualsUC:     catalogUsecases.NewListManualsUseCase(r.manualRepo, c.log),

		listShowcaseUC:    showcaseUsecases.NewListShowcaseUseCase(r.showcaseRepo, c.log),
		listFeaturedUC:    showcaseUsecases.NewListFeaturedUseCase(r.showcaseRepo, c.log),
		getShowcaseUC:     showcaseUsecases.NewGetShowcaseMachineUseCase(r.showcaseRepo, c.markdown, c.log),
		requestQuoteUC:    showcaseUsecases.NewRequestQuoteUseCase(r.showcaseRepo, r.siteSettingRepo, defaults, c.log),
		saveShowcaseUC:    showcaseUsecases.NewSaveShowcaseMachineUseCase(r.showcaseRepo, c.log),
		listAllShowcaseUC: showcaseUsecases.NewListAllShowcaseUseCase(r.showcaseRepo, c.log),

		getSiteContextUC:     sitesettingUsecases.NewGetSiteContextUseCase(r.siteSettingRepo, defaults, c.log),
		updateSiteSettingsUC: sitesettingUsecases.NewUpdateSiteSettingsUseCase(r.siteSettingRepo, c.log),
	}
}
