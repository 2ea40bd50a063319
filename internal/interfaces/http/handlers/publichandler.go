package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	showcaseUsecases "github.com/giftex-inc/giftex/internal/application/showcase/usecases"
	sitesettingUsecases "github.com/giftex-inc/giftex/internal/application/sitesetting/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

// PublicHandler serves the unauthenticated institutional site endpoints.
type PublicHandler struct {
	listShowcaseUC  showcaseUsecases.ListShowcaseExecutor
	listFeaturedUC  showcaseUsecases.ListFeaturedExecutor
	getShowcaseUC   showcaseUsecases.GetShowcaseMachineExecutor
	requestQuoteUC  showcaseUsecases.RequestQuoteExecutor
	siteContextUC   sitesettingUsecases.GetSiteContextExecutor
	logger          logger.Interface
}

func NewPublicHandler(
	listShowcaseUC showcaseUsecases.ListShowcaseExecutor,
	listFeaturedUC showcaseUsecases.ListFeaturedExecutor,
	getShowcaseUC showcaseUsecases.GetShowcaseMachineExecutor,
	requestQuoteUC showcaseUsecases.RequestQuoteExecutor,
	siteContextUC sitesettingUsecases.GetSiteContextExecutor,
	logger logger.Interface,
) *PublicHandler {
	return &PublicHandler{
		listShowcaseUC: listShowcaseUC,
		listFeaturedUC: listFeaturedUC,
		getShowcaseUC:  getShowcaseUC,
		requestQuoteUC: requestQuoteUC,
		siteContextUC:  siteContextUC,
		logger:         logger,
	}
}

type QuoteRequest struct {
	Name        string `json:"name" binding:"required"`
	Company     string `json:"company"`
	City        string `json:"city"`
	Phone       string `json:"phone" binding:"required"`
	Need        string `json:"need"`
	MachineSlug string `json:"machine_slug"`
}

// ListShowcase returns the active showcase machines, optionally narrowed by
// category. With featured=N only the first N featured machines are returned,
// for the landing page.
func (h *PublicHandler) ListShowcase(c *gin.Context) {
	if raw := c.Query("featured"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid featured limit")
			return
		}

		result, err := h.listFeaturedUC.Execute(c.Request.Context(), limit)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "success", gin.H{"machines": result.Machines})
		return
	}

	result, err := h.listShowcaseUC.Execute(c.Request.Context(), showcaseUsecases.ListShowcaseQuery{
		Category: c.Query("category"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{"machines": result.Machines})
}

func (h *PublicHandler) GetShowcaseMachine(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "machine slug is required")
		return
	}

	result, err := h.getShowcaseUC.Execute(c.Request.Context(), slug)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", result)
}

// RequestQuote builds a prefilled WhatsApp link for the sales number. The
// frontend opens the returned URL in a new tab.
func (h *PublicHandler) RequestQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.requestQuoteUC.Execute(c.Request.Context(), showcaseUsecases.RequestQuoteCommand{
		Name:        req.Name,
		Company:     req.Company,
		City:        req.City,
		Phone:       req.Phone,
		Need:        req.Need,
		MachineSlug: req.MachineSlug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"whatsapp_url": result.WhatsAppURL,
	})
}

// GetSiteContext returns the merged site content: database overrides on top
// of the configured defaults.
func (h *PublicHandler) GetSiteContext(c *gin.Context) {
	result, err := h.siteContextUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"site_name":             result.SiteName,
		"tagline":               result.Tagline,
		"whatsapp_number":       result.WhatsAppNumber,
		"contact_phone":         result.ContactPhone,
		"contact_email":         result.ContactEmail,
		"address_text":          result.AddressText,
		"google_maps_embed_url": result.GoogleMapsEmbedURL,
	})
}
