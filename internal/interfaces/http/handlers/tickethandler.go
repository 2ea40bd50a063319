package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/ticket/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

// TicketHandler serves both client and staff requests; the use cases scope
// access by the actor role placed in the context.
type TicketHandler struct {
	createUC       usecases.CreateTicketExecutor
	detailUC       usecases.GetTicketDetailExecutor
	listMineUC     usecases.ListMyTicketsExecutor
	addMessageUC   usecases.AddMessageExecutor
	mediaUC        usecases.GetTicketMediaExecutor
	maxUploadBytes int64
	logger         logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	detailUC usecases.GetTicketDetailExecutor,
	listMineUC usecases.ListMyTicketsExecutor,
	addMessageUC usecases.AddMessageExecutor,
	mediaUC usecases.GetTicketMediaExecutor,
	maxUploadMB int,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:       createUC,
		detailUC:       detailUC,
		listMineUC:     listMineUC,
		addMessageUC:   addMessageUC,
		mediaUC:        mediaUC,
		maxUploadBytes: int64(maxUploadMB) * 1024 * 1024,
		logger:         logger,
	}
}

type AddMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// CreateTicketRequest is assembled from the multipart form, so it is
// validated with utils.ValidateStruct instead of binding tags.
type CreateTicketRequest struct {
	MachineID   uint   `json:"machine_id" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required,max=4000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// CreateTicket accepts a multipart form: machine_id, category, symptom_id
// (optional), description, priority (optional), and up to five "media" file
// parts.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	machineID, err := strconv.ParseUint(c.PostForm("machine_id"), 10, 32)
	if err != nil || machineID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid machine ID")
		return
	}

	var symptomID *uint
	if raw := c.PostForm("symptom_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid symptom ID")
			return
		}
		id := uint(parsed)
		symptomID = &id
	}

	req := CreateTicketRequest{
		MachineID:   uint(machineID),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTicketCommand{
		OwnerID:     utils.CurrentUserID(c),
		MachineID:   req.MachineID,
		Category:    req.Category,
		SymptomID:   symptomID,
		Description: req.Description,
		Priority:    req.Priority,
	}

	for _, fileHeader := range form.File["media"] {
		if fileHeader.Size > h.maxUploadBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file %s exceeds the upload size limit", fileHeader.Filename))
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			h.logger.Errorw("failed to open uploaded file", "name", fileHeader.Filename, "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
			return
		}
		defer f.Close()

		cmd.Media = append(cmd.Media, usecases.MediaUpload{
			OriginalName: fileHeader.Filename,
			ContentType:  fileHeader.Header.Get("Content-Type"),
			SizeBytes:    fileHeader.Size,
			Reader:       f,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"ticket_id":  result.TicketID,
		"status":     result.Status,
		"priority":   result.Priority,
		"created_at": result.CreatedAt,
	}, "ticket opened successfully")
}

func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listMineUC.Execute(c.Request.Context(), usecases.ListMyTicketsQuery{
		OwnerID:  utils.CurrentUserID(c),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.detailUC.Execute(c.Request.Context(), usecases.GetTicketDetailQuery{
		TicketID:  ticketID,
		ActorID:   utils.CurrentUserID(c),
		ActorRole: actorRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", result)
}

func (h *TicketHandler) AddMessage(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.addMessageUC.Execute(c.Request.Context(), usecases.AddMessageCommand{
		TicketID:  ticketID,
		SenderID:  utils.CurrentUserID(c),
		ActorRole: actorRole(c),
		Body:      req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message_id":  result.MessageID,
		"sender_role": result.SenderRole,
		"created_at":  result.CreatedAt,
	}, "message added")
}

// DownloadMedia streams a ticket attachment from disk.
func (h *TicketHandler) DownloadMedia(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	mediaID, err := utils.ParseIDParam(c, "mediaId", "media")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	media, err := h.mediaUC.Execute(c.Request.Context(), usecases.GetTicketMediaQuery{
		TicketID:  ticketID,
		MediaID:   mediaID,
		ActorID:   utils.CurrentUserID(c),
		ActorRole: actorRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer media.File.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", media.OriginalName),
	}
	c.DataFromReader(http.StatusOK, media.SizeBytes, media.ContentType, media.File, extraHeaders)
}
