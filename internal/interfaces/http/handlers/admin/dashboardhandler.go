package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashboardUsecases "github.com/giftex-inc/giftex/internal/application/dashboard/usecases"
	machineUsecases "github.com/giftex-inc/giftex/internal/application/machine/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type DashboardHandler struct {
	dashboardUC    dashboardUsecases.GetAdminDashboardExecutor
	listMachinesUC machineUsecases.ListMachinesExecutor
	logger         logger.Interface
}

func NewDashboardHandler(
	dashboardUC dashboardUsecases.GetAdminDashboardExecutor,
	listMachinesUC machineUsecases.ListMachinesExecutor,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC:    dashboardUC,
		listMachinesUC: listMachinesUC,
		logger:         logger,
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"open_tickets":       result.OpenTickets,
		"open_part_requests": result.OpenPartRequests,
		"tickets_today":      result.TicketsToday,
	})
}

// ListMachines returns the full machine registry across all owners.
func (h *DashboardHandler) ListMachines(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listMachinesUC.Execute(c.Request.Context(), machineUsecases.ListMachinesQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Machines, result.Total, result.Page, result.PageSize)
}
