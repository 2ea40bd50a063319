package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

func TestSaveMachineModelCreate(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		CreateFunc: func(ctx context.Context, model *catalog.MachineModel) error {
			return model.SetID(5)
		},
	}

	uc := NewSaveMachineModelUseCase(modelRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), SaveMachineModelCommand{
		Name:     "Picador GF-300",
		Category: "CORTE",
		Active:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), result.ID)
}

func TestSaveMachineModelUpdateDeactivates(t *testing.T) {
	var saved *catalog.MachineModel
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			model, err := catalog.ReconstructMachineModel(id, "Picador GF-300", catalog.CategoryCorte, "", true, time.Now(), time.Now())
			require.NoError(t, err)
			return model, nil
		},
		UpdateFunc: func(ctx context.Context, model *catalog.MachineModel) error {
			saved = model
			return nil
		},
	}

	uc := NewSaveMachineModelUseCase(modelRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SaveMachineModelCommand{
		ID:       5,
		Name:     "Picador GF-300 v2",
		Category: "CORTE",
		Active:   false,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Picador GF-300 v2", saved.Name())
	assert.False(t, saved.IsActive())
}

func TestSaveMachineModelInvalidCategory(t *testing.T) {
	uc := NewSaveMachineModelUseCase(&mockMachineModelRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SaveMachineModelCommand{Name: "X", Category: "SOLDA"})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestListSymptomsActiveByCategory(t *testing.T) {
	var gotCategory catalog.Category
	symptomRepo := &mockSymptomRepository{
		ListActiveByCategoryFunc: func(ctx context.Context, category catalog.Category) ([]*catalog.Symptom, error) {
			gotCategory = category
			s, err := catalog.ReconstructSymptom(1, "Não liga", category, true, time.Now(), time.Now())
			require.NoError(t, err)
			return []*catalog.Symptom{s}, nil
		},
	}

	uc := NewListSymptomsUseCase(symptomRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListSymptomsQuery{Category: "ELETRICA", ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryEletrica, gotCategory)
	require.Len(t, result.Symptoms, 1)
	assert.Equal(t, "Não liga", result.Symptoms[0].Name)
}

func TestSavePartUnknownModel(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			return nil, appErrors.NewNotFoundError("machine model not found")
		},
	}

	uc := NewSavePartUseCase(&mockPartRepository{}, modelRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SavePartCommand{
		Name:               "Lâmina",
		CompatibleModelIDs: []uint{99},
		Active:             true,
	})
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestSavePartCreate(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			model, err := catalog.ReconstructMachineModel(id, "Picador GF-300", catalog.CategoryCorte, "", true, time.Now(), time.Now())
			require.NoError(t, err)
			return model, nil
		},
	}
	var saved *catalog.Part
	partRepo := &mockPartRepository{
		CreateFunc: func(ctx context.Context, part *catalog.Part) error {
			saved = part
			return part.SetID(8)
		},
	}

	uc := NewSavePartUseCase(partRepo, modelRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), SavePartCommand{
		Name:               "Lâmina de corte",
		Code:               "LAM-01",
		CompatibleModelIDs: []uint{5, 5, 9},
		Active:             true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(8), result.ID)
	require.NotNil(t, saved)
	assert.ElementsMatch(t, []uint{5, 9}, saved.CompatibleModelIDs())
}

func TestSavePartRequiresCode(t *testing.T) {
	uc := NewSavePartUseCase(&mockPartRepository{}, &mockMachineModelRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SavePartCommand{
		Name:   "Lâmina de corte",
		Active: true,
	})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestCreateManualFileAndURLExclusive(t *testing.T) {
	uc := NewCreateManualUseCase(&mockManualRepository{}, &mockMachineModelRepository{}, &mockManualStorage{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateManualCommand{
		ModelID:     5,
		Title:       "Manual",
		ExternalURL: "https://x",
		File:        &FileUpload{OriginalName: "m.pdf", Reader: strings.NewReader("x")},
	})
	assert.True(t, appErrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateManualCommand{ModelID: 5, Title: "Manual"})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestCreateManualFromFile(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			model, err := catalog.ReconstructMachineModel(id, "Picador GF-300", catalog.CategoryCorte, "", true, time.Now(), time.Now())
			require.NoError(t, err)
			return model, nil
		},
	}
	manualRepo := &mockManualRepository{
		CreateFunc: func(ctx context.Context, manual *catalog.Manual) error {
			return manual.SetID(3)
		},
	}
	store := &mockManualStorage{}

	uc := NewCreateManualUseCase(manualRepo, modelRepo, store, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateManualCommand{
		ModelID: 5,
		Title:   "Manual de operação",
		File:    &FileUpload{OriginalName: "manual.pdf", Reader: strings.NewReader("pdf")},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), result.ManualID)
	assert.Len(t, store.saved, 1)
	assert.Empty(t, store.removed)
}

func TestCreateManualCleansUpOnRepoFailure(t *testing.T) {
	modelRepo := &mockMachineModelRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.MachineModel, error) {
			model, err := catalog.ReconstructMachineModel(id, "Picador GF-300", catalog.CategoryCorte, "", true, time.Now(), time.Now())
			require.NoError(t, err)
			return model, nil
		},
	}
	manualRepo := &mockManualRepository{
		CreateFunc: func(ctx context.Context, manual *catalog.Manual) error {
			return appErrors.NewInternalError("insert failed")
		},
	}
	store := &mockManualStorage{}

	uc := NewCreateManualUseCase(manualRepo, modelRepo, store, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateManualCommand{
		ModelID: 5,
		Title:   "Manual",
		File:    &FileUpload{OriginalName: "manual.pdf", Reader: strings.NewReader("pdf")},
	})
	require.Error(t, err)
	assert.Len(t, store.removed, 1)
}
