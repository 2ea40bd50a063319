package usecases

import (
	"context"
	"os"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
)

type mockManualRepository struct {
	FindByIDFunc   func(ctx context.Context, id uint) (*catalog.Manual, error)
	ListActiveFunc func(ctx context.Context) ([]*catalog.Manual, error)
}

func (m *mockManualRepository) Create(ctx context.Context, manual *catalog.Manual) error { return nil }
func (m *mockManualRepository) Update(ctx context.Context, manual *catalog.Manual) error { return nil }
func (m *mockManualRepository) FindByID(ctx context.Context, id uint) (*catalog.Manual, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockManualRepository) ListActive(ctx context.Context) ([]*catalog.Manual, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockManualRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Manual, int64, error) {
	return nil, 0, nil
}

type mockManualOpener struct {
	OpenFunc func(relPath string) (*os.File, error)
}

func (m *mockManualOpener) Open(relPath string) (*os.File, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(relPath)
	}
	return nil, os.ErrNotExist
}
