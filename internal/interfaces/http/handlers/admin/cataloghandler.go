package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/catalog/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

// CatalogHandler manages the back-office catalog: machine models, symptoms
// and parts.
type CatalogHandler struct {
	saveModelUC    usecases.SaveMachineModelExecutor
	listModelsUC   usecases.ListMachineModelsExecutor
	saveSymptomUC  usecases.SaveSymptomExecutor
	listSymptomsUC usecases.ListSymptomsExecutor
	savePartUC     usecases.SavePartExecutor
	listPartsUC    usecases.ListPartsExecutor
	logger         logger.Interface
}

func NewCatalogHandler(
	saveModelUC usecases.SaveMachineModelExecutor,
	listModelsUC usecases.ListMachineModelsExecutor,
	saveSymptomUC usecases.SaveSymptomExecutor,
	listSymptomsUC usecases.ListSymptomsExecutor,
	savePartUC usecases.SavePartExecutor,
	listPartsUC usecases.ListPartsExecutor,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		saveModelUC:    saveModelUC,
		listModelsUC:   listModelsUC,
		saveSymptomUC:  saveSymptomUC,
		listSymptomsUC: listSymptomsUC,
		savePartUC:     savePartUC,
		listPartsUC:    listPartsUC,
		logger:         logger,
	}
}

type SaveMachineModelRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type SaveSymptomRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Active   bool   `json:"active"`
}

type SavePartRequest struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name" binding:"required"`
	Code               string `json:"code" binding:"required"`
	Description        string `json:"description"`
	CompatibleModelIDs []uint `json:"compatible_model_ids"`
	Active             bool   `json:"active"`
}

func (h *CatalogHandler) SaveMachineModel(c *gin.Context) {
	var req SaveMachineModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.saveModelUC.Execute(c.Request.Context(), usecases.SaveMachineModelCommand{
		ID:          req.ID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "machine model saved", gin.H{
		"model_id":   result.ID,
		"updated_at": result.UpdatedAt,
	})
}

func (h *CatalogHandler) ListMachineModels(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listModelsUC.Execute(c.Request.Context(), usecases.ListMachineModelsQuery{
		Page:       page,
		PageSize:   pageSize,
		ActiveOnly: c.Query("active_only") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Models, result.Total, result.Page, result.PageSize)
}

func (h *CatalogHandler) SaveSymptom(c *gin.Context) {
	var req SaveSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.saveSymptomUC.Execute(c.Request.Context(), usecases.SaveSymptomCommand{
		ID:       req.ID,
		Name:     req.Name,
		Category: req.Category,
		Active:   req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "symptom saved", gin.H{
		"symptom_id": result.ID,
		"updated_at": result.UpdatedAt,
	})
}

func (h *CatalogHandler) ListSymptoms(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listSymptomsUC.Execute(c.Request.Context(), usecases.ListSymptomsQuery{
		Category:   c.Query("category"),
		Page:       page,
		PageSize:   pageSize,
		ActiveOnly: c.Query("active_only") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Symptoms, result.Total, result.Page, result.PageSize)
}

func (h *CatalogHandler) SavePart(c *gin.Context) {
	var req SavePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.savePartUC.Execute(c.Request.Context(), usecases.SavePartCommand{
		ID:                 req.ID,
		Name:               req.Name,
		Code:               req.Code,
		Description:        req.Description,
		CompatibleModelIDs: req.CompatibleModelIDs,
		Active:             req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "part saved", gin.H{
		"part_id":    result.ID,
		"updated_at": result.UpdatedAt,
	})
}

func (h *CatalogHandler) ListParts(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listPartsUC.Execute(c.Request.Context(), usecases.ListPartsQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Parts, result.Total, result.Page, result.PageSize)
}
