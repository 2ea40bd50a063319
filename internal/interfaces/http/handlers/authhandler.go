package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUsecases "github.com/giftex-inc/giftex/internal/application/auth/usecases"
	userUsecases "github.com/giftex-inc/giftex/internal/application/user/usecases"
	"github.com/giftex-inc/giftex/internal/domain/user"
	sharedConfig "github.com/giftex-inc/giftex/internal/shared/config"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

type AuthHandler struct {
	loginUC          authUsecases.LoginExecutor
	refreshUC        authUsecases.RefreshTokenExecutor
	changePasswordUC userUsecases.ChangePasswordExecutor
	userRepo         user.Repository
	authCfg          *sharedConfig.AuthConfig
	logger           logger.Interface
}

func NewAuthHandler(
	loginUC authUsecases.LoginExecutor,
	refreshUC authUsecases.RefreshTokenExecutor,
	changePasswordUC userUsecases.ChangePasswordExecutor,
	userRepo user.Repository,
	authCfg *sharedConfig.AuthConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:          loginUC,
		refreshUC:        refreshUC,
		changePasswordUC: changePasswordUC,
		userRepo:         userRepo,
		authCfg:          authCfg,
		logger:           logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := authUsecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setTokenCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user_id":    result.UserID,
		"name":       result.Name,
		"role":       result.Role,
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)

	// Fall back to the request body for non-browser clients.
	if refreshToken == "" {
		var req struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), authUsecases.RefreshTokenCommand{RefreshToken: refreshToken})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setTokenCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "token refreshed successfully", gin.H{
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.authCfg)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	u, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to load current user", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"id":      u.ID(),
		"name":    u.Name(),
		"email":   u.Email(),
		"role":    u.Role().String(),
		"company": u.Company(),
		"phone":   u.Phone(),
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := userUsecases.ChangePasswordCommand{
		UserID:          utils.CurrentUserID(c),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	if err := h.changePasswordUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed successfully", nil)
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	accessMaxAge := h.authCfg.AccessExpMinutes * 60
	refreshMaxAge := h.authCfg.RefreshExpDays * 24 * 60 * 60
	utils.SetAuthCookies(c, h.authCfg, accessToken, refreshToken, accessMaxAge, refreshMaxAge)
}
