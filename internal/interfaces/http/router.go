package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/interfaces/http/middleware"
	"github.com/giftex-inc/giftex/internal/interfaces/http/routes"
)

// SetupRoutes configures global middleware and all route groups.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupPublicRoutes(c.engine, &routes.PublicRouteConfig{
		PublicHandler: c.hdlrs.publicHandler,
		QuoteLimiter:  c.quoteLimiter,
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		LoginLimiter:   c.loginLimiter,
	})

	routes.SetupPortalRoutes(c.engine, &routes.PortalRouteConfig{
		MachineHandler:     c.hdlrs.machineHandler,
		TicketHandler:      c.hdlrs.ticketHandler,
		PartRequestHandler: c.hdlrs.partRequestHandler,
		ManualHandler:      c.hdlrs.manualHandler,
		DashboardHandler:   c.hdlrs.dashboardHandler,
		CatalogHandler:     c.hdlrs.catalogHandler,
		AuthMiddleware:     c.authMiddleware,
	})

	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		CatalogHandler:     c.hdlrs.adminCatalogHandler,
		ManualHandler:      c.hdlrs.adminManualHandler,
		TicketHandler:      c.hdlrs.adminTicketHandler,
		PartRequestHandler: c.hdlrs.adminPartRequestHandler,
		ShowcaseHandler:    c.hdlrs.adminShowcaseHandler,
		UserHandler:        c.hdlrs.adminUserHandler,
		SiteSettingHandler: c.hdlrs.adminSiteSettingHandler,
		DashboardHandler:   c.hdlrs.adminDashboardHandler,
		AuthMiddleware:     c.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Run starts the HTTP server
func (c *Container) Run(addr string) error {
	return c.engine.Run(addr)
}
