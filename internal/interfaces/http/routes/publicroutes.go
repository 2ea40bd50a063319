package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/interfaces/http/handlers"
	"github.com/giftex-inc/giftex/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for the unauthenticated site routes.
type PublicRouteConfig struct {
	PublicHandler *handlers.PublicHandler
	QuoteLimiter  *middleware.RateLimiter
}

func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	public := engine.Group("/public")
	{
		public.GET("/site-context", cfg.PublicHandler.GetSiteContext)
		public.GET("/showcase", cfg.PublicHandler.ListShowcase)
		public.GET("/showcase/:slug", cfg.PublicHandler.GetShowcaseMachine)
		public.POST("/quote", cfg.QuoteLimiter.Limit(), cfg.PublicHandler.RequestQuote)
	}
}
