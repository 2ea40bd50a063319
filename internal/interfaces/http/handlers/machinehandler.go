package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/machine/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type MachineHandler struct {
	registerUC usecases.RegisterMachineExecutor
	updateUC   usecases.UpdateMachineExecutor
	listMineUC usecases.ListMyMachinesExecutor
	logger     logger.Interface
}

func NewMachineHandler(
	registerUC usecases.RegisterMachineExecutor,
	updateUC usecases.UpdateMachineExecutor,
	listMineUC usecases.ListMyMachinesExecutor,
	logger logger.Interface,
) *MachineHandler {
	return &MachineHandler{
		registerUC: registerUC,
		updateUC:   updateUC,
		listMineUC: listMineUC,
		logger:     logger,
	}
}

type RegisterMachineRequest struct {
	ModelID      uint   `json:"model_id" binding:"required"`
	SerialNumber string `json:"serial_number" binding:"required"`
	City         string `json:"city" binding:"omitempty,max=120"`
	UF           string `json:"uf" binding:"omitempty,len=2"`
	PurchaseDate string `json:"purchase_date"`
	Notes        string `json:"notes"`
}

type UpdateMachineRequest struct {
	SerialNumber string `json:"serial_number" binding:"required"`
	City         string `json:"city" binding:"omitempty,max=120"`
	UF           string `json:"uf" binding:"omitempty,len=2"`
	PurchaseDate string `json:"purchase_date"`
	Notes        string `json:"notes"`
}

func (h *MachineHandler) RegisterMachine(c *gin.Context) {
	var req RegisterMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RegisterMachineCommand{
		OwnerID:      utils.CurrentUserID(c),
		ModelID:      req.ModelID,
		SerialNumber: req.SerialNumber,
		City:         req.City,
		UF:           req.UF,
		PurchaseDate: purchaseDate,
		Notes:        req.Notes,
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"machine_id": result.MachineID,
		"created_at": result.CreatedAt,
	}, "machine registered successfully")
}

func (h *MachineHandler) ListMyMachines(c *gin.Context) {
	result, err := h.listMineUC.Execute(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"machines": toMachineResponses(result.Machines),
	})
}

func (h *MachineHandler) UpdateMachine(c *gin.Context) {
	machineID, err := utils.ParseIDParam(c, "id", "machine")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateMachineCommand{
		MachineID:    machineID,
		OwnerID:      utils.CurrentUserID(c),
		SerialNumber: req.SerialNumber,
		City:         req.City,
		UF:           req.UF,
		PurchaseDate: purchaseDate,
		Notes:        req.Notes,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "machine updated successfully", gin.H{
		"machine_id": result.MachineID,
		"updated_at": result.UpdatedAt,
	})
}

type machineResponse struct {
	ID            uint   `json:"id"`
	ModelID       uint   `json:"model_id"`
	ModelName     string `json:"model_name"`
	ModelCategory string `json:"model_category"`
	SerialNumber  string `json:"serial_number"`
	City          string `json:"city,omitempty"`
	UF            string `json:"uf,omitempty"`
	PurchaseDate  string `json:"purchase_date,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

func toMachineResponses(items []usecases.MachineItem) []machineResponse {
	out := make([]machineResponse, 0, len(items))
	for _, m := range items {
		resp := machineResponse{
			ID:            m.ID,
			ModelID:       m.ModelID,
			ModelName:     m.ModelName,
			ModelCategory: m.ModelCategory,
			SerialNumber:  m.SerialNumber,
			City:          m.City,
			UF:            m.UF,
			Notes:         m.Notes,
		}
		if m.PurchaseDate != nil {
			resp.PurchaseDate = m.PurchaseDate.Format("2006-01-02")
		}
		out = append(out, resp)
	}
	return out
}
