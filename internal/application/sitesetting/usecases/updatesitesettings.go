package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/whatsapp"
)

type UpdateSiteSettingsCommand struct {
	SiteName           string
	Tagline            string
	WhatsAppNumber     string
	ContactPhone       string
	ContactEmail       string
	AddressText        string
	GoogleMapsEmbedURL string
}

type UpdateSiteSettingsResult struct {
	UpdatedAt time.Time
}

// UpdateSiteSettingsUseCase replaces the solo settings row. Empty fields
// mean "fall back to the configured default".
type UpdateSiteSettingsUseCase struct {
	settingRepo sitesetting.Repository
	logger      logger.Interface
}

func NewUpdateSiteSettingsUseCase(settingRepo sitesetting.Repository, logger logger.Interface) *UpdateSiteSettingsUseCase {
	return &UpdateSiteSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpdateSiteSettingsUseCase) Execute(ctx context.Context, cmd UpdateSiteSettingsCommand) (*UpdateSiteSettingsResult, error) {
	setting, err := uc.settingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = sitesetting.NewSiteSetting()
	}

	number := cmd.WhatsAppNumber
	if number != "" {
		number = whatsapp.SanitizeNumber(number)
	}

	setting.Update(
		cmd.SiteName,
		cmd.Tagline,
		number,
		cmd.ContactPhone,
		cmd.ContactEmail,
		cmd.AddressText,
		cmd.GoogleMapsEmbedURL,
	)

	if err := uc.settingRepo.Upsert(ctx, setting); err != nil {
		uc.logger.Errorw("failed to save site settings", "error", err)
		return nil, err
	}

	uc.logger.Infow("site settings updated")
	return &UpdateSiteSettingsResult{UpdatedAt: setting.UpdatedAt()}, nil
}
