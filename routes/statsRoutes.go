package routes

import (
	"github.com/gin-gonic/gin"

	"cleanify-be/controllers"
	"cleanify-be/middlewares"
)

// StatsRoutes sets up the dashboard statistics route
func StatsRoutes(r *gin.Engine, h *controllers.Handler) {
	stats := r.Group("/api/stats", middlewares.AuthMiddleware(h.Store))
	{
		stats.GET("", h.GetStats)
	}
}
