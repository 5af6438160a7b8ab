package routes

import (
	"github.com/gin-gonic/gin"

	"cleanify-be/controllers"
	"cleanify-be/middlewares"
)

// BinRoutes sets up the bin routes
func BinRoutes(r *gin.Engine, h *controllers.Handler) {
	bins := r.Group("/api/bins", middlewares.AuthMiddleware(h.Store))
	{
		bins.GET("", h.GetBins)
		bins.POST("/:id/collect", h.CollectBin)
	}
}
