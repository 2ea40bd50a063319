package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/partrequest/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type PartRequestHandler struct {
	listUC   usecases.ListPartRequestsExecutor
	statusUC usecases.ChangePartRequestStatusExecutor
	logger   logger.Interface
}

func NewPartRequestHandler(
	listUC usecases.ListPartRequestsExecutor,
	statusUC usecases.ChangePartRequestStatusExecutor,
	logger logger.Interface,
) *PartRequestHandler {
	return &PartRequestHandler{
		listUC:   listUC,
		statusUC: statusUC,
		logger:   logger,
	}
}

type ChangePartRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *PartRequestHandler) ListPartRequests(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListPartRequestsQuery{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("owner_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid owner ID")
			return
		}
		ownerID := uint(parsed)
		query.OwnerID = &ownerID
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

func (h *PartRequestHandler) ChangeStatus(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "part request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePartRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), usecases.ChangePartRequestStatusCommand{
		RequestID: requestID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "part request status changed", gin.H{
		"request_id": result.RequestID,
		"status":     result.Status,
		"updated_at": result.UpdatedAt,
	})
}
