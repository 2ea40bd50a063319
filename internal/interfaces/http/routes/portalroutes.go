package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/interfaces/http/handlers"
	"github.com/giftex-inc/giftex/internal/interfaces/http/middleware"
)

// PortalRouteConfig holds dependencies for the authenticated client portal.
type PortalRouteConfig struct {
	MachineHandler     *handlers.MachineHandler
	TicketHandler      *handlers.TicketHandler
	PartRequestHandler *handlers.PartRequestHandler
	ManualHandler      *handlers.ManualHandler
	DashboardHandler   *handlers.DashboardHandler
	CatalogHandler     *handlers.CatalogHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func SetupPortalRoutes(engine *gin.Engine, cfg *PortalRouteConfig) {
	machines := engine.Group("/machines")
	machines.Use(cfg.AuthMiddleware.RequireAuth())
	{
		machines.POST("", cfg.MachineHandler.RegisterMachine)
		machines.GET("", cfg.MachineHandler.ListMyMachines)
		machines.PUT("/:id", cfg.MachineHandler.UpdateMachine)
		machines.GET("/:id/parts", cfg.PartRequestHandler.ListSelectableParts)
	}

	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListMyTickets)
		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.POST("/:id/messages", cfg.TicketHandler.AddMessage)
		tickets.GET("/:id/media/:mediaId", cfg.TicketHandler.DownloadMedia)
	}

	partRequests := engine.Group("/part-requests")
	partRequests.Use(cfg.AuthMiddleware.RequireAuth())
	{
		partRequests.POST("", cfg.PartRequestHandler.CreatePartRequest)
		partRequests.GET("", cfg.PartRequestHandler.ListMyPartRequests)
		partRequests.GET("/:id", cfg.PartRequestHandler.GetPartRequest)
	}

	manuals := engine.Group("/manuals")
	manuals.Use(cfg.AuthMiddleware.RequireAuth())
	{
		manuals.GET("", cfg.ManualHandler.ListManuals)
		manuals.GET("/:id/download", cfg.ManualHandler.DownloadManual)
	}

	catalog := engine.Group("/catalog")
	catalog.Use(cfg.AuthMiddleware.RequireAuth())
	{
		catalog.GET("/models", cfg.CatalogHandler.ListSelectableModels)
		catalog.GET("/symptoms", cfg.CatalogHandler.ListActiveSymptoms)
	}

	engine.GET("/dashboard", cfg.AuthMiddleware.RequireAuth(), cfg.DashboardHandler.GetDashboard)
}
