package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/dashboard/usecases"
	"github.com/giftex-inc/giftex/internal/shared/biztime"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type DashboardHandler struct {
	dashboardUC usecases.GetDashboardExecutor
	logger      logger.Interface
}

func NewDashboardHandler(dashboardUC usecases.GetDashboardExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"machine_count":      result.MachineCount,
		"open_tickets":       result.OpenTickets,
		"open_part_requests": result.OpenPartRequests,
		"as_of":              biztime.FormatLocal(biztime.NowUTC(), "02/01/2006 15:04"),
	})
}
