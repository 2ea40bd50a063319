package http

import (
	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/domain/partrequest"
	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/user"
	"github.com/giftex-inc/giftex/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo          user.Repository
	machineRepo       machine.Repository
	modelRepo         catalog.MachineModelRepository
	symptomRepo       catalog.SymptomRepository
	partRepo          catalog.PartRepository
	manualRepo        catalog.ManualRepository
	ticketRepo        ticket.Repository
	ticketMediaRepo   ticket.MediaRepository
	ticketMessageRepo ticket.MessageRepository
	partRequestRepo   partrequest.Repository
	showcaseRepo      showcase.Repository
	siteSettingRepo   sitesetting.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:          repository.NewUserRepository(c.db),
		machineRepo:       repository.NewMachineRepository(c.db),
		modelRepo:         repository.NewMachineModelRepository(c.db),
		symptomRepo:       repository.NewSymptomRepository(c.db),
		partRepo:          repository.NewPartRepository(c.db),
		manualRepo:        repository.NewManualRepository(c.db),
		ticketRepo:        repository.NewTicketRepository(c.db),
		ticketMediaRepo:   repository.NewTicketMediaRepository(c.db),
		ticketMessageRepo: repository.NewTicketMessageRepository(c.db),
		partRequestRepo:   repository.NewPartRequestRepository(c.db),
		showcaseRepo:      repository.NewShowcaseRepository(c.db),
		siteSettingRepo:   repository.NewSiteSettingRepository(c.db),
	}
}
