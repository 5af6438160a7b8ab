package routes

import (
	"github.com/gin-gonic/gin"

	"cleanify-be/controllers"
	"cleanify-be/middlewares"
)

// AlertRoutes sets up the alert routes
func AlertRoutes(r *gin.Engine, h *controllers.Handler) {
	alerts := r.Group("/api/alerts", middlewares.AuthMiddleware(h.Store))
	{
		alerts.GET("", h.GetAlerts)
		alerts.POST("/:id/resolve", h.ResolveAlert)
	}
}
