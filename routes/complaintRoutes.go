package routes

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"cleanify-be/controllers"
	"cleanify-be/middlewares"
	"cleanify-be/models"
)

// ComplaintRoutes sets up the complaint and reward routes
func ComplaintRoutes(r *gin.Engine, h *controllers.Handler) {
	limit := 20
	if v, err := strconv.Atoi(os.Getenv("COMPLAINT_DAILY_LIMIT")); err == nil && v > 0 {
		limit = v
	}

	complaints := r.Group("/api/complaints", middlewares.AuthMiddleware(h.Store))
	{
		complaints.GET("", h.GetComplaints)
		complaints.POST("", middlewares.ComplaintRateLimiter(limit), h.CreateComplaint)
		complaints.POST("/:id/respond", middlewares.RequireRole(models.RoleAdmin), h.RespondComplaint)
		complaints.POST("/:id/resolve", h.ResolveComplaint)
		complaints.GET("/rewards", h.GetRewards)
		complaints.POST("/upload-media", h.UploadComplaintMedia)
	}
	r.GET("/api/complaints/media/:filename", h.GetComplaintMedia)
}
