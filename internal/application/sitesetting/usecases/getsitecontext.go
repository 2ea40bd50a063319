package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/whatsapp"
)

type SiteContextResult struct {
	SiteName           string `json:"site_name"`
	Tagline            string `json:"tagline"`
	WhatsAppNumber     string `json:"whatsapp_number"`
	ContactPhone       string `json:"contact_phone"`
	ContactEmail       string `json:"contact_email"`
	AddressText        string `json:"address_text"`
	GoogleMapsEmbedURL string `json:"google_maps_embed_url,omitempty"`
}

// GetSiteContextUseCase merges the staff-edited settings row with the
// configured defaults. Every public page renders from this.
type GetSiteContextUseCase struct {
	settingRepo sitesetting.Repository
	defaults    sitesetting.Defaults
	logger      logger.Interface
}

func NewGetSiteContextUseCase(settingRepo sitesetting.Repository, defaults sitesetting.Defaults, logger logger.Interface) *GetSiteContextUseCase {
	return &GetSiteContextUseCase{
		settingRepo: settingRepo,
		defaults:    defaults,
		logger:      logger,
	}
}

func (uc *GetSiteContextUseCase) Execute(ctx context.Context) (*SiteContextResult, error) {
	setting, err := uc.settingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	var resolved sitesetting.Resolved
	if setting == nil {
		resolved = sitesetting.ResolveDefaults(uc.defaults)
	} else {
		resolved = setting.Resolve(uc.defaults)
	}

	return &SiteContextResult{
		SiteName:           resolved.SiteName,
		Tagline:            resolved.Tagline,
		WhatsAppNumber:     whatsapp.SanitizeNumber(resolved.WhatsAppNumber),
		ContactPhone:       resolved.ContactPhone,
		ContactEmail:       resolved.ContactEmail,
		AddressText:        resolved.AddressText,
		GoogleMapsEmbedURL: resolved.GoogleMapsEmbedURL,
	}, nil
}
