package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/shared/config"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SetAuthCookies sets access and refresh token as HttpOnly cookies.
func SetAuthCookies(c *gin.Context, authCfg *config.AuthConfig, accessToken, refreshToken string, accessMaxAge, refreshMaxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)

	c.SetCookie(AccessTokenCookie, accessToken, accessMaxAge, "/", authCfg.CookieDomain, authCfg.CookieSecure, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, refreshMaxAge, "/", authCfg.CookieDomain, authCfg.CookieSecure, true)
}

// ClearAuthCookies clears access and refresh token cookies.
func ClearAuthCookies(c *gin.Context, authCfg *config.AuthConfig) {
	c.SetSameSite(http.SameSiteLaxMode)

	c.SetCookie(AccessTokenCookie, "", -1, "/", authCfg.CookieDomain, authCfg.CookieSecure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", authCfg.CookieDomain, authCfg.CookieSecure, true)
}

// GetTokenFromCookie retrieves a token from the named cookie; the auth
// middleware falls back to the Authorization header separately.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err == nil && token != "" {
		return token
	}
	return ""
}
