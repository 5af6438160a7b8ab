package routes

import (
	"github.com/gin-gonic/gin"

	"cleanify-be/controllers"
	"cleanify-be/middlewares"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, h *controllers.Handler) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", h.LoginUser)
		auth.POST("/register", h.RegisterCitizen)
		auth.GET("/me", middlewares.AuthMiddleware(h.Store), h.GetMe)
	}
}
