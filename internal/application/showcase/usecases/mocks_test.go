package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
	"github.com/giftex-inc/giftex/internal/shared/services/markdown"
)

func newTestMarkdown() markdown.Service {
	return markdown.NewService()
}

type mockShowcaseRepository struct {
	CreateFunc           func(ctx context.Context, m *showcase.Machine) error
	UpdateFunc           func(ctx context.Context, m *showcase.Machine) error
	FindByIDFunc         func(ctx context.Context, id uint) (*showcase.Machine, error)
	FindActiveBySlugFunc func(ctx context.Context, slug string) (*showcase.Machine, error)
	ExistsBySlugFunc     func(ctx context.Context, slug string) (bool, error)
	ListActiveFunc       func(ctx context.Context, category *catalog.Category) ([]*showcase.Machine, error)
	ListFeaturedFunc     func(ctx context.Context, limit int) ([]*showcase.Machine, error)
	ListFunc             func(ctx context.Context, offset, limit int) ([]*showcase.Machine, int64, error)
}

func (m *mockShowcaseRepository) Create(ctx context.Context, machine *showcase.Machine) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, machine)
	}
	return nil
}

func (m *mockShowcaseRepository) Update(ctx context.Context, machine *showcase.Machine) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, machine)
	}
	return nil
}

func (m *mockShowcaseRepository) FindByID(ctx context.Context, id uint) (*showcase.Machine, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockShowcaseRepository) FindActiveBySlug(ctx context.Context, slug string) (*showcase.Machine, error) {
	if m.FindActiveBySlugFunc != nil {
		return m.FindActiveBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockShowcaseRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug)
	}
	return false, nil
}

func (m *mockShowcaseRepository) ListActive(ctx context.Context, category *catalog.Category) ([]*showcase.Machine, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockShowcaseRepository) ListFeatured(ctx context.Context, limit int) ([]*showcase.Machine, error) {
	if m.ListFeaturedFunc != nil {
		return m.ListFeaturedFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockShowcaseRepository) List(ctx context.Context, offset, limit int) ([]*showcase.Machine, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

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
