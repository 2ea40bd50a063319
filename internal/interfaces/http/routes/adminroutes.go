package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/giftex-inc/giftex/internal/interfaces/http/handlers/admin"
	"github.com/giftex-inc/giftex/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the staff back office.
type AdminRouteConfig struct {
	CatalogHandler     *adminHandlers.CatalogHandler
	ManualHandler      *adminHandlers.ManualHandler
	TicketHandler      *adminHandlers.TicketHandler
	PartRequestHandler *adminHandlers.PartRequestHandler
	ShowcaseHandler    *adminHandlers.ShowcaseHandler
	UserHandler        *adminHandlers.UserHandler
	SiteSettingHandler *adminHandlers.SiteSettingHandler
	DashboardHandler   *adminHandlers.DashboardHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/dashboard", cfg.DashboardHandler.GetDashboard)
		admin.GET("/machines", cfg.DashboardHandler.ListMachines)

		catalog := admin.Group("/catalog")
		{
			catalog.POST("/models", cfg.CatalogHandler.SaveMachineModel)
			catalog.GET("/models", cfg.CatalogHandler.ListMachineModels)
			catalog.POST("/symptoms", cfg.CatalogHandler.SaveSymptom)
			catalog.GET("/symptoms", cfg.CatalogHandler.ListSymptoms)
			catalog.POST("/parts", cfg.CatalogHandler.SavePart)
			catalog.GET("/parts", cfg.CatalogHandler.ListParts)
		}

		manuals := admin.Group("/manuals")
		{
			manuals.POST("", cfg.ManualHandler.CreateManual)
			manuals.GET("", cfg.ManualHandler.ListManuals)
			manuals.PATCH("/:id/active", cfg.ManualHandler.SetManualActive)
		}

		tickets := admin.Group("/tickets")
		{
			tickets.GET("", cfg.TicketHandler.ListTickets)
			tickets.PATCH("/:id/status", cfg.TicketHandler.ChangeStatus)
			tickets.PATCH("/:id/priority", cfg.TicketHandler.ChangePriority)
		}

		partRequests := admin.Group("/part-requests")
		{
			partRequests.GET("", cfg.PartRequestHandler.ListPartRequests)
			partRequests.PATCH("/:id/status", cfg.PartRequestHandler.ChangeStatus)
		}

		showcase := admin.Group("/showcase")
		{
			showcase.POST("", cfg.ShowcaseHandler.SaveShowcaseMachine)
			showcase.GET("", cfg.ShowcaseHandler.ListShowcaseMachines)
		}

		users := admin.Group("/users")
		{
			users.POST("", cfg.UserHandler.CreateUser)
			users.GET("", cfg.UserHandler.ListUsers)
			users.PATCH("/:id/active", cfg.UserHandler.SetUserActive)
		}

		settings := admin.Group("/site-settings")
		{
			settings.GET("", cfg.SiteSettingHandler.GetSiteSettings)
			settings.PUT("", cfg.SiteSettingHandler.UpdateSiteSettings)
		}
	}
}
