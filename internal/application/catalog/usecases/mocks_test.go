package usecases

import (
	"context"
	"io"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
)

type mockMachineModelRepository struct {
	CreateFunc     func(ctx context.Context, model *catalog.MachineModel) error
	UpdateFunc     func(ctx context.Context, model *catalog.MachineModel) error
	FindByIDFunc   func(ctx context.Context, id uint) (*catalog.MachineModel, error)
	ListActiveFunc func(ctx context.Context) ([]*catalog.MachineModel, error)
	ListFunc       func(ctx context.Context, offset, limit int) ([]*catalog.MachineModel, int64, error)
}

func (m *mockMachineModelRepository) Create(ctx context.Context, model *catalog.MachineModel) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, model)
	}
	return nil
}

func (m *mockMachineModelRepository) Update(ctx context.Context, model *catalog.MachineModel) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, model)
	}
	return nil
}

func (m *mockMachineModelRepository) FindByID(ctx context.Context, id uint) (*catalog.MachineModel, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMachineModelRepository) ListActive(ctx context.Context) ([]*catalog.MachineModel, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockMachineModelRepository) List(ctx context.Context, offset, limit int) ([]*catalog.MachineModel, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

type mockSymptomRepository struct {
	CreateFunc               func(ctx context.Context, symptom *catalog.Symptom) error
	UpdateFunc               func(ctx context.Context, symptom *catalog.Symptom) error
	FindByIDFunc             func(ctx context.Context, id uint) (*catalog.Symptom, error)
	ListActiveFunc           func(ctx context.Context) ([]*catalog.Symptom, error)
	ListActiveByCategoryFunc func(ctx context.Context, category catalog.Category) ([]*catalog.Symptom, error)
	ListFunc                 func(ctx context.Context, offset, limit int) ([]*catalog.Symptom, int64, error)
}

func (m *mockSymptomRepository) Create(ctx context.Context, symptom *catalog.Symptom) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, symptom)
	}
	return nil
}

func (m *mockSymptomRepository) Update(ctx context.Context, symptom *catalog.Symptom) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, symptom)
	}
	return nil
}

func (m *mockSymptomRepository) FindByID(ctx context.Context, id uint) (*catalog.Symptom, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSymptomRepository) ListActive(ctx context.Context) ([]*catalog.Symptom, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockSymptomRepository) ListActiveByCategory(ctx context.Context, category catalog.Category) ([]*catalog.Symptom, error) {
	if m.ListActiveByCategoryFunc != nil {
		return m.ListActiveByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockSymptomRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Symptom, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

type mockPartRepository struct {
	CreateFunc   func(ctx context.Context, part *catalog.Part) error
	UpdateFunc   func(ctx context.Context, part *catalog.Part) error
	FindByIDFunc func(ctx context.Context, id uint) (*catalog.Part, error)
	ListFunc     func(ctx context.Context, offset, limit int) ([]*catalog.Part, int64, error)
}

func (m *mockPartRepository) Create(ctx context.Context, part *catalog.Part) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, part)
	}
	return nil
}

func (m *mockPartRepository) Update(ctx context.Context, part *catalog.Part) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, part)
	}
	return nil
}

func (m *mockPartRepository) FindByID(ctx context.Context, id uint) (*catalog.Part, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPartRepository) ListActive(ctx context.Context) ([]*catalog.Part, error) {
	return nil, nil
}

func (m *mockPartRepository) ListActiveCompatibleWith(ctx context.Context, modelID uint) ([]*catalog.Part, error) {
	return nil, nil
}

func (m *mockPartRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Part, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

type mockManualRepository struct {
	CreateFunc   func(ctx context.Context, manual *catalog.Manual) error
	UpdateFunc   func(ctx context.Context, manual *catalog.Manual) error
	FindByIDFunc func(ctx context.Context, id uint) (*catalog.Manual, error)
	ListFunc     func(ctx context.Context, offset, limit int) ([]*catalog.Manual, int64, error)
}

func (m *mockManualRepository) Create(ctx context.Context, manual *catalog.Manual) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, manual)
	}
	return nil
}

func (m *mockManualRepository) Update(ctx context.Context, manual *catalog.Manual) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, manual)
	}
	return nil
}

func (m *mockManualRepository) FindByID(ctx context.Context, id uint) (*catalog.Manual, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockManualRepository) ListActive(ctx context.Context) ([]*catalog.Manual, error) {
	return nil, nil
}

func (m *mockManualRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Manual, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

type mockManualStorage struct {
	SaveFunc func(subdir, prefix, originalName string, r io.Reader) (string, error)

	saved   []string
	removed []string
}

func (m *mockManualStorage) Save(subdir, prefix, originalName string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(subdir, prefix, originalName, r)
	}
	path := subdir + "/" + prefix + "_" + originalName
	m.saved = append(m.saved, path)
	return path, nil
}

func (m *mockManualStorage) Remove(relPath string) error {
	m.removed = append(m.removed, relPath)
	return nil
}
