package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/catalog/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type ManualHandler struct {
	createUC    usecases.CreateManualExecutor
	setActiveUC usecases.SetManualActiveExecutor
	listUC      usecases.ListManualsExecutor
	logger      logger.Interface
}

func NewManualHandler(
	createUC usecases.CreateManualExecutor,
	setActiveUC usecases.SetManualActiveExecutor,
	listUC usecases.ListManualsExecutor,
	logger logger.Interface,
) *ManualHandler {
	return &ManualHandler{
		createUC:    createUC,
		setActiveUC: setActiveUC,
		listUC:      listUC,
		logger:      logger,
	}
}

type SetManualActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// CreateManualRequest is assembled from the multipart form, so it is
// validated with utils.ValidateStruct instead of binding tags.
type CreateManualRequest struct {
	ModelID     uint   `json:"model_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	ExternalURL string `json:"external_url" validate:"omitempty,url"`
}

// CreateManual accepts a multipart form: model_id, title, and either a
// "file" part or an external_url field.
func (h *ManualHandler) CreateManual(c *gin.Context) {
	modelID, err := strconv.ParseUint(c.PostForm("model_id"), 10, 32)
	if err != nil || modelID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid model ID")
		return
	}

	req := CreateManualRequest{
		ModelID:     uint(modelID),
		Title:       c.PostForm("title"),
		ExternalURL: c.PostForm("external_url"),
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateManualCommand{
		ModelID:     req.ModelID,
		Title:       req.Title,
		ExternalURL: req.ExternalURL,
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			h.logger.Errorw("failed to open uploaded manual", "name", fileHeader.Filename, "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
			return
		}
		defer f.Close()

		cmd.File = &usecases.FileUpload{
			OriginalName: fileHeader.Filename,
			Reader:       f,
		}
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"manual_id":  result.ManualID,
		"created_at": result.CreatedAt,
	}, "manual created")
}

func (h *ManualHandler) SetManualActive(c *gin.Context) {
	manualID, err := utils.ParseIDParam(c, "id", "manual")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetManualActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.setActiveUC.Execute(c.Request.Context(), usecases.SetManualActiveCommand{
		ManualID: manualID,
		Active:   *req.Active,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "manual updated", nil)
}

func (h *ManualHandler) ListManuals(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListManualsQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Manuals, result.Total, result.Page, result.PageSize)
}
