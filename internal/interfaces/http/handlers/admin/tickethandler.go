package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/ticket/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

// TicketHandler covers the staff-only ticket operations. Detail, messages
// and media go through the shared portal handler, which recognizes the
// admin role.
type TicketHandler struct {
	listUC     usecases.ListTicketsExecutor
	statusUC   usecases.ChangeTicketStatusExecutor
	priorityUC usecases.ChangeTicketPriorityExecutor
	logger     logger.Interface
}

func NewTicketHandler(
	listUC usecases.ListTicketsExecutor,
	statusUC usecases.ChangeTicketStatusExecutor,
	priorityUC usecases.ChangeTicketPriorityExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		listUC:     listUC,
		statusUC:   statusUC,
		priorityUC: priorityUC,
		logger:     logger,
	}
}

type ChangeTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ChangeTicketPriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListTicketsQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
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

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), usecases.ChangeTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket status changed", gin.H{
		"ticket_id":  result.TicketID,
		"status":     result.Status,
		"updated_at": result.UpdatedAt,
	})
}

func (h *TicketHandler) ChangePriority(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeTicketPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.priorityUC.Execute(c.Request.Context(), usecases.ChangeTicketPriorityCommand{
		TicketID: ticketID,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket priority changed", gin.H{
		"ticket_id":  result.TicketID,
		"priority":   result.Priority,
		"updated_at": result.UpdatedAt,
	})
}
