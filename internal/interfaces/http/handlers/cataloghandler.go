package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/catalog/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

// CatalogHandler serves the read-only catalog lookups the portal forms
// build from: active machine models and active symptoms.
type CatalogHandler struct {
	listModelsUC   usecases.ListMachineModelsExecutor
	listSymptomsUC usecases.ListSymptomsExecutor
	logger         logger.Interface
}

func NewCatalogHandler(
	listModelsUC usecases.ListMachineModelsExecutor,
	listSymptomsUC usecases.ListSymptomsExecutor,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		listModelsUC:   listModelsUC,
		listSymptomsUC: listSymptomsUC,
		logger:         logger,
	}
}

func (h *CatalogHandler) ListSelectableModels(c *gin.Context) {
	result, err := h.listModelsUC.Execute(c.Request.Context(), usecases.ListMachineModelsQuery{
		ActiveOnly: true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"models": result.Models,
	})
}

func (h *CatalogHandler) ListActiveSymptoms(c *gin.Context) {
	result, err := h.listSymptomsUC.Execute(c.Request.Context(), usecases.ListSymptomsQuery{
		Category:   c.Query("category"),
		ActiveOnly: true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"symptoms": result.Symptoms,
	})
}
