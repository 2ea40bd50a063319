package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogUsecases "github.com/giftex-inc/giftex/internal/application/catalog/usecases"
	"github.com/giftex-inc/giftex/internal/interfaces/http/handlers/testutil"
)

type mockListModelsUC struct {
	result    *catalogUsecases.ListMachineModelsResult
	err       error
	lastQuery catalogUsecases.ListMachineModelsQuery
}

func (m *mockListModelsUC) Execute(ctx context.Context, query catalogUsecases.ListMachineModelsQuery) (*catalogUsecases.ListMachineModelsResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockListSymptomsUC struct {
	result    *catalogUsecases.ListSymptomsResult
	err       error
	lastQuery catalogUsecases.ListSymptomsQuery
}

func (m *mockListSymptomsUC) Execute(ctx context.Context, query catalogUsecases.ListSymptomsQuery) (*catalogUsecases.ListSymptomsResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

func TestCatalogHandler_ListSelectableModels(t *testing.T) {
	mockUC := &mockListModelsUC{result: &catalogUsecases.ListMachineModelsResult{
		Models: []catalogUsecases.MachineModelItem{
			{ID: 1, Name: "Debulhadora GX-200", Category: "BATER_FUMO", Active: true},
		},
	}}
	handler := NewCatalogHandler(mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog/models", nil)

	handler.ListSelectableModels(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastQuery.ActiveOnly)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "Debulhadora GX-200")
}

func TestCatalogHandler_ListActiveSymptoms(t *testing.T) {
	mockUC := &mockListSymptomsUC{result: &catalogUsecases.ListSymptomsResult{
		Symptoms: []catalogUsecases.SymptomItem{
			{ID: 3, Name: "Lâmina desalinhada", Category: "CORTE", Active: true},
		},
	}}
	handler := NewCatalogHandler(nil, mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog/symptoms", nil)
	testutil.SetQueryParams(c, map[string]string{"category": "CORTE"})

	handler.ListActiveSymptoms(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastQuery.ActiveOnly)
	assert.Equal(t, "CORTE", mockUC.lastQuery.Category)
}
