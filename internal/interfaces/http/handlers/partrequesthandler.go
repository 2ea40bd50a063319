package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/partrequest/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type PartRequestHandler struct {
	createUC          usecases.CreatePartRequestExecutor
	detailUC          usecases.GetPartRequestExecutor
	listMineUC        usecases.ListMyPartRequestsExecutor
	selectablePartsUC usecases.ListSelectablePartsExecutor
	logger            logger.Interface
}

func NewPartRequestHandler(
	createUC usecases.CreatePartRequestExecutor,
	detailUC usecases.GetPartRequestExecutor,
	listMineUC usecases.ListMyPartRequestsExecutor,
	selectablePartsUC usecases.ListSelectablePartsExecutor,
	logger logger.Interface,
) *PartRequestHandler {
	return &PartRequestHandler{
		createUC:          createUC,
		detailUC:          detailUC,
		listMineUC:        listMineUC,
		selectablePartsUC: selectablePartsUC,
		logger:            logger,
	}
}

// PartRequestItemRequest carries one item line. Item-level validation lives
// in the use case, which drops bad lines instead of rejecting the request.
type PartRequestItemRequest struct {
	PartID      *uint  `json:"part_id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

type ShippingRequest struct {
	Name         string `json:"name" binding:"required,max=120"`
	CpfCnpj      string `json:"cpf_cnpj" binding:"omitempty,max=40"`
	Zip          string `json:"zip" binding:"required,max=20"`
	Address      string `json:"address" binding:"required,max=160"`
	Number       string `json:"number" binding:"omitempty,max=20"`
	Complement   string `json:"complement" binding:"omitempty,max=80"`
	Neighborhood string `json:"neighborhood" binding:"omitempty,max=80"`
	City         string `json:"city" binding:"required,max=80"`
	UF           string `json:"uf" binding:"required,len=2"`
}

type CreatePartRequestRequest struct {
	MachineID    uint                     `json:"machine_id" binding:"required"`
	ContactName  string                   `json:"contact_name" binding:"required,max=120"`
	ContactPhone string                   `json:"contact_phone" binding:"required,max=40"`
	Shipping     ShippingRequest          `json:"shipping" binding:"required"`
	Notes        string                   `json:"notes"`
	Items        []PartRequestItemRequest `json:"items" binding:"omitempty,dive"`
}

func (h *PartRequestHandler) CreatePartRequest(c *gin.Context) {
	var req CreatePartRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreatePartRequestCommand{
		OwnerID:      utils.CurrentUserID(c),
		MachineID:    req.MachineID,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Shipping: usecases.ShippingInput{
			Name:         req.Shipping.Name,
			CpfCnpj:      req.Shipping.CpfCnpj,
			Zip:          req.Shipping.Zip,
			Address:      req.Shipping.Address,
			Number:       req.Shipping.Number,
			Complement:   req.Shipping.Complement,
			Neighborhood: req.Shipping.Neighborhood,
			City:         req.Shipping.City,
			UF:           req.Shipping.UF,
		},
		Notes: req.Notes,
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, usecases.ItemInput{
			PartID:      item.PartID,
			Description: item.Description,
			Quantity:    item.Quantity,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"request_id": result.RequestID,
		"status":     result.Status,
		"created_at": result.CreatedAt,
	}, "part request opened successfully")
}

func (h *PartRequestHandler) ListMyPartRequests(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listMineUC.Execute(c.Request.Context(), usecases.ListMyPartRequestsQuery{
		OwnerID:  utils.CurrentUserID(c),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

func (h *PartRequestHandler) GetPartRequest(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "part request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.detailUC.Execute(c.Request.Context(), usecases.GetPartRequestQuery{
		RequestID: requestID,
		ActorID:   utils.CurrentUserID(c),
		ActorRole: actorRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", result)
}

// ListSelectableParts returns the active parts compatible with one of the
// caller's machines, for the part request form.
func (h *PartRequestHandler) ListSelectableParts(c *gin.Context) {
	machineID, err := utils.ParseIDParam(c, "id", "machine")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.selectablePartsUC.Execute(c.Request.Context(), usecases.ListSelectablePartsQuery{
		OwnerID:   utils.CurrentUserID(c),
		MachineID: machineID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"parts": result.Parts,
	})
}
