package routes

import (
	"github.com/gin-gonic/gin"

	"cleanify-be/controllers"
	"cleanify-be/middlewares"
	"cleanify-be/models"
)

// TaskRoutes sets up the task and worker-management routes. Start/complete
// are intentionally open to any authenticated caller, not just the assigned
// worker.
func TaskRoutes(r *gin.Engine, h *controllers.Handler) {
	tasks := r.Group("/api/tasks", middlewares.AuthMiddleware(h.Store))
	{
		tasks.GET("", h.GetTasks)
		tasks.POST("", middlewares.RequireRole(models.RoleAdmin), h.CreateTask)
		tasks.POST("/:id/start", h.StartTask)
		tasks.POST("/:id/complete", h.CompleteTask)
		tasks.POST("/:id/upload-photo", h.UploadTaskPhoto)
		tasks.GET("/workers", middlewares.RequireRole(models.RoleAdmin), h.GetWorkers)
		tasks.POST("/workers", middlewares.RequireRole(models.RoleAdmin), h.CreateWorker)
		tasks.DELETE("/workers/:id", middlewares.RequireRole(models.RoleAdmin), h.DeleteWorker)
	}
	r.GET("/api/tasks/media/:filename", h.GetTaskMedia)
}
