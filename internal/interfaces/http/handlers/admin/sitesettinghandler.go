package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/sitesetting/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type SiteSettingHandler struct {
	getUC    usecases.GetSiteContextExecutor
	updateUC usecases.UpdateSiteSettingsExecutor
	logger   logger.Interface
}

func NewSiteSettingHandler(
	getUC usecases.GetSiteContextExecutor,
	updateUC usecases.UpdateSiteSettingsExecutor,
	logger logger.Interface,
) *SiteSettingHandler {
	return &SiteSettingHandler{
		getUC:    getUC,
		updateUC: updateUC,
		logger:   logger,
	}
}

// UpdateSiteSettingsRequest carries per-field overrides; an empty field
// keeps the configured default.
type UpdateSiteSettingsRequest struct {
	SiteName           string `json:"site_name"`
	Tagline            string `json:"tagline"`
	WhatsAppNumber     string `json:"whatsapp_number"`
	ContactPhone       string `json:"contact_phone"`
	ContactEmail       string `json:"contact_email"`
	AddressText        string `json:"address_text"`
	GoogleMapsEmbedURL string `json:"google_maps_embed_url"`
}

func (h *SiteSettingHandler) GetSiteSettings(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context())
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

func (h *SiteSettingHandler) UpdateSiteSettings(c *gin.Context) {
	var req UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateSiteSettingsCommand{
		SiteName:           req.SiteName,
		Tagline:            req.Tagline,
		WhatsAppNumber:     req.WhatsAppNumber,
		ContactPhone:       req.ContactPhone,
		ContactEmail:       req.ContactEmail,
		AddressText:        req.AddressText,
		GoogleMapsEmbedURL: req.GoogleMapsEmbedURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "site settings updated", gin.H{
		"updated_at": result.UpdatedAt,
	})
}
