package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/showcase/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type ShowcaseHandler struct {
	saveUC usecases.SaveShowcaseMachineExecutor
	listUC usecases.ListAllShowcaseExecutor
	logger logger.Interface
}

func NewShowcaseHandler(
	saveUC usecases.SaveShowcaseMachineExecutor,
	listUC usecases.ListAllShowcaseExecutor,
	logger logger.Interface,
) *ShowcaseHandler {
	return &ShowcaseHandler{
		saveUC: saveUC,
		listUC: listUC,
		logger: logger,
	}
}

type SaveShowcaseMachineRequest struct {
	ID               uint   `json:"id"`
	Name             string `json:"name" binding:"required"`
	Category         string `json:"category" binding:"required"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	Capacity         string `json:"capacity"`
	Power            string `json:"power"`
	Dimensions       string `json:"dimensions"`
	Warranty         string `json:"warranty"`
	ImagePath        string `json:"image_path"`
	Featured         bool   `json:"featured"`
	DisplayOrder     int    `json:"display_order"`
	Active           bool   `json:"active"`
}

func (h *ShowcaseHandler) SaveShowcaseMachine(c *gin.Context) {
	var req SaveShowcaseMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.saveUC.Execute(c.Request.Context(), usecases.SaveShowcaseMachineCommand{
		ID:               req.ID,
		Name:             req.Name,
		Category:         req.Category,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Capacity:         req.Capacity,
		Power:            req.Power,
		Dimensions:       req.Dimensions,
		Warranty:         req.Warranty,
		ImagePath:        req.ImagePath,
		Featured:         req.Featured,
		DisplayOrder:     req.DisplayOrder,
		Active:           req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "showcase machine saved", gin.H{
		"id":         result.ID,
		"slug":       result.Slug,
		"updated_at": result.UpdatedAt,
	})
}

func (h *ShowcaseHandler) ListShowcaseMachines(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAllShowcaseQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Machines, result.Total, result.Page, result.PageSize)
}
