package mappers

import (
	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
)

// ShowcaseMapper converts showcase machines to and from persistence models.
type ShowcaseMapper interface {
	ToModel(m *showcase.Machine) *models.ShowcaseMachineModel
	ToDomain(model *models.ShowcaseMachineModel) (*showcase.Machine, error)
}

type ShowcaseMapperImpl struct{}

func NewShowcaseMapper() ShowcaseMapper {
	return &ShowcaseMapperImpl{}
}

func (mp *ShowcaseMapperImpl) ToModel(m *showcase.Machine) *models.ShowcaseMachineModel {
	return &models.ShowcaseMachineModel{
		ID:               m.ID(),
		Name:             m.Name(),
		Slug:             m.Slug(),
		Category:         m.Category().String(),
		ShortDescription: m.ShortDescription(),
		Description:      m.Description(),
		Capacity:         m.Specs().Capacity,
		Power:            m.Specs().Power,
		Dimensions:       m.Specs().Dimensions,
		Warranty:         m.Specs().Warranty,
		ImagePath:        m.ImagePath(),
		Featured:         m.IsFeatured(),
		DisplayOrder:     m.DisplayOrder(),
		Active:           m.IsActive(),
		CreatedAt:        m.CreatedAt().UnixMilli(),
		UpdatedAt:        m.UpdatedAt().UnixMilli(),
	}
}

func (mp *ShowcaseMapperImpl) ToDomain(model *models.ShowcaseMachineModel) (*showcase.Machine, error) {
	category, err := catalog.NewCategory(model.Category)
	if err != nil {
		return nil, err
	}

	return showcase.ReconstructMachine(
		model.ID,
		model.Name,
		model.Slug,
		category,
		model.ShortDescription,
		model.Description,
		showcase.Specs{
			Capacity:   model.Capacity,
			Power:      model.Power,
			Dimensions: model.Dimensions,
			Warranty:   model.Warranty,
		},
		model.ImagePath,
		model.Featured,
		model.DisplayOrder,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

// SiteSettingMapper converts the solo settings row.
type SiteSettingMapper interface {
	ToModel(s *sitesetting.SiteSetting) *models.SiteSettingModel
	ToDomain(model *models.SiteSettingModel) (*sitesetting.SiteSetting, error)
}

type SiteSettingMapperImpl struct{}

func NewSiteSettingMapper() SiteSettingMapper {
	return &SiteSettingMapperImpl{}
}

func (mp *SiteSettingMapperImpl) ToModel(s *sitesetting.SiteSetting) *models.SiteSettingModel {
	return &models.SiteSettingModel{
		ID:                 s.ID(),
		SiteName:           s.SiteName(),
		Tagline:            s.Tagline(),
		WhatsAppNumber:     s.WhatsAppNumber(),
		ContactPhone:       s.ContactPhone(),
		ContactEmail:       s.ContactEmail(),
		AddressText:        s.AddressText(),
		GoogleMapsEmbedURL: s.GoogleMapsEmbedURL(),
		UpdatedAt:          s.UpdatedAt().UnixMilli(),
	}
}

func (mp *SiteSettingMapperImpl) ToDomain(model *models.SiteSettingModel) (*sitesetting.SiteSetting, error) {
	return sitesetting.ReconstructSiteSetting(
		model.ID,
		model.SiteName,
		model.Tagline,
		model.WhatsAppNumber,
		model.ContactPhone,
		model.ContactEmail,
		model.AddressText,
		model.GoogleMapsEmbedURL,
		millisToTime(model.UpdatedAt),
	)
}
