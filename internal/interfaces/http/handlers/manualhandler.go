package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/manual/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type ManualHandler struct {
	listUC     usecases.ListActiveManualsExecutor
	downloadUC usecases.DownloadManualExecutor
	logger     logger.Interface
}

func NewManualHandler(
	listUC usecases.ListActiveManualsExecutor,
	downloadUC usecases.DownloadManualExecutor,
	logger logger.Interface,
) *ManualHandler {
	return &ManualHandler{
		listUC:     listUC,
		downloadUC: downloadUC,
		logger:     logger,
	}
}

// ListManuals returns the full active manual library.
func (h *ManualHandler) ListManuals(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"manuals": result.Manuals,
	})
}

func (h *ManualHandler) DownloadManual(c *gin.Context) {
	manualID, err := utils.ParseIDParam(c, "id", "manual")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	manual, err := h.downloadUC.Execute(c.Request.Context(), usecases.DownloadManualQuery{
		ManualID:  manualID,
		ActorRole: actorRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer manual.File.Close()

	info, err := manual.File.Stat()
	if err != nil {
		h.logger.Errorw("failed to stat manual file", "manual_id", manualID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to read manual file")
		return
	}

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", manual.Title+".pdf"),
	}
	c.DataFromReader(http.StatusOK, info.Size(), "application/pdf", manual.File, extraHeaders)
}
