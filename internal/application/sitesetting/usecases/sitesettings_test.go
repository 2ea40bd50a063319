package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type mockSiteSettingRepository struct {
	GetFunc    func(ctx context.Context) (*sitesetting.SiteSetting, error)
	UpsertFunc func(ctx context.Context, setting *sitesetting.SiteSetting) error
}

func (m *mockSiteSettingRepository) Get(ctx context.Context) (*sitesetting.SiteSetting, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *mockSiteSettingRepository) Upsert(ctx context.Context, setting *sitesetting.SiteSetting) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, setting)
	}
	return nil
}

func testDefaults() sitesetting.Defaults {
	return sitesetting.Defaults{
		SiteName:       "GIFT Excellence",
		Tagline:        "Máquinas para fumo desde 1990",
		WhatsAppNumber: "+55 (31) 3772-6397",
		ContactEmail:   "contato@giftexcellence.com.br",
	}
}

func TestGetSiteContextWithoutRow(t *testing.T) {
	uc := NewGetSiteContextUseCase(&mockSiteSettingRepository{}, testDefaults(), logger.NewLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GIFT Excellence", result.SiteName)
	assert.Equal(t, "553137726397", result.WhatsAppNumber)
}

func TestGetSiteContextMergesOverrides(t *testing.T) {
	setting := sitesetting.NewSiteSetting()
	setting.Update("Nome Novo", "", "", "", "", "", "")
	repo := &mockSiteSettingRepository{
		GetFunc: func(ctx context.Context) (*sitesetting.SiteSetting, error) {
			return setting, nil
		},
	}

	uc := NewGetSiteContextUseCase(repo, testDefaults(), logger.NewLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nome Novo", result.SiteName)
	assert.Equal(t, "Máquinas para fumo desde 1990", result.Tagline)
}

func TestUpdateSiteSettingsCreatesRow(t *testing.T) {
	var saved *sitesetting.SiteSetting
	repo := &mockSiteSettingRepository{
		UpsertFunc: func(ctx context.Context, setting *sitesetting.SiteSetting) error {
			saved = setting
			return nil
		},
	}

	uc := NewUpdateSiteSettingsUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateSiteSettingsCommand{
		SiteName:       "GIFT",
		WhatsAppNumber: "+55 31 98888-7777",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, sitesetting.SoloID, saved.ID())
	assert.Equal(t, "GIFT", saved.SiteName())
	assert.Equal(t, "5531988887777", saved.WhatsAppNumber())
}

func TestUpdateSiteSettingsKeepsEmptyAsDefaultMarker(t *testing.T) {
	var saved *sitesetting.SiteSetting
	repo := &mockSiteSettingRepository{
		UpsertFunc: func(ctx context.Context, setting *sitesetting.SiteSetting) error {
			saved = setting
			return nil
		},
	}

	uc := NewUpdateSiteSettingsUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateSiteSettingsCommand{})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Empty(t, saved.WhatsAppNumber())
}
