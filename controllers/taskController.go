package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"cleanify-be/middlewares"
	"cleanify-be/models"
)

// Completion photos are image-only; complaint media is the wider list.
var taskPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// GetTasks lists tasks newest-first by assignment time. Workers see only
// their own tasks; admin and citizens see the full collection.
func (h *Handler) GetTasks(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	tasks := []models.Task{}
	_ = h.Store.With(func() error {
		for _, t := range h.Store.Tasks {
			if user.Role == models.RoleWorker && t.WorkerID != user.ID {
				continue
			}
			tasks = append(tasks, t)
		}
		return nil
	})

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].AssignedAt.After(tasks[j].AssignedAt)
	})

	c.JSON(http.StatusOK, tasks)
}

// CreateTask assigns a task to a worker. Admin-only. The worker lookup runs
// in its own guarded read so an unknown worker fails before the write; if the
// task is linked to a complaint, that complaint moves to in_progress.
func (h *Handler) CreateTask(c *gin.Context) {
	var input struct {
		WorkerID    int                 `json:"worker_id" binding:"required"`
		ComplaintID *int                `json:"complaint_id,omitempty"`
		Title       string              `json:"title" binding:"required,max=200"`
		Description string              `json:"description" binding:"required,max=1000"`
		Location    string              `json:"location" binding:"required,max=200"`
		Priority    models.TaskPriority `json:"priority"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !models.ValidPriority(input.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	var workerName string
	workerFound := false
	_ = h.Store.With(func() error {
		if w := h.Store.FindUserByID(input.WorkerID); w != nil && w.Role == models.RoleWorker {
			workerName = w.Name
			workerFound = true
		}
		return nil
	})
	if !workerFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	var created models.Task
	_ = h.Store.With(func() error {
		created = h.Store.AddTask(models.Task{
			WorkerID:         input.WorkerID,
			WorkerName:       workerName,
			ComplaintID:      input.ComplaintID,
			Title:            input.Title,
			Description:      input.Description,
			Location:         input.Location,
			Priority:         input.Priority,
			Status:           models.TaskPending,
			AssignedAt:       h.Store.Now(),
			CompletionPhotos: []string{},
		})

		if input.ComplaintID != nil {
			if cm := h.Store.FindComplaint(*input.ComplaintID); cm != nil && cm.Status != models.ComplaintResolved {
				cm.Status = models.ComplaintInProgress
			}
		}
		return nil
	})

	c.JSON(http.StatusCreated, created)
}

// StartTask marks a task in-progress. Any authenticated caller may transition
// any task; there is deliberately no check that the caller is the assigned
// worker (admin override is allowed through the same path).
func (h *Handler) StartTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var updated models.Task
	found := false
	_ = h.Store.With(func() error {
		t := h.Store.FindTask(taskID)
		if t == nil {
			return nil
		}
		t.Status = models.TaskInProgress
		updated = *t
		found = true
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// CompleteTask marks a task completed, stamps completedAt and resolves the
// linked complaint if it is not already resolved. Like StartTask, the caller
// is not required to be the assigned worker.
func (h *Handler) CompleteTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var updated models.Task
	found := false
	_ = h.Store.With(func() error {
		t := h.Store.FindTask(taskID)
		if t == nil {
			return nil
		}
		now := h.Store.Now()
		t.Status = models.TaskCompleted
		t.CompletedAt = &now

		// Task-driven resolution is idempotent and pays no bonus.
		if t.ComplaintID != nil {
			if cm := h.Store.FindComplaint(*t.ComplaintID); cm != nil && cm.Status != models.ComplaintResolved {
				cm.Status = models.ComplaintResolved
			}
		}
		updated = *t
		found = true
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UploadTaskPhoto stores a completion photo and appends its URL to the task.
// The file write happens outside the guard; only the URL append holds it.
// Valid in any task state and never transitions status.
func (h *Handler) UploadTaskPhoto(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !taskPhotoTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only images (JPEG/PNG/WebP/GIF) are allowed"})
		return
	}

	ext := "jpg"
	if i := strings.LastIndex(file.Filename, "."); i >= 0 && i < len(file.Filename)-1 {
		ext = file.Filename[i+1:]
	}
	filename := "task_" + strconv.Itoa(taskID) + "_" + strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		log.Println("Error creating upload dir:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, filename)); err != nil {
		log.Println("Error saving upload:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	url := "/api/tasks/media/" + filename

	found := false
	_ = h.Store.With(func() error {
		t := h.Store.FindTask(taskID)
		if t == nil {
			return nil
		}
		t.CompletionPhotos = append(t.CompletionPhotos, url)
		found = true
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      url,
		"filename": filename,
	})
}

// GetTaskMedia serves an uploaded task photo.
func (h *Handler) GetTaskMedia(c *gin.Context) {
	h.serveMedia(c)
}

// GetWorkers lists workers for the admin task-assignment dropdown.
func (h *Handler) GetWorkers(c *gin.Context) {
	workers := []gin.H{}
	_ = h.Store.With(func() error {
		for _, u := range h.Store.Users {
			if u.Role == models.RoleWorker {
				workers = append(workers, gin.H{"id": u.ID, "name": u.Name, "email": u.Email})
			}
		}
		return nil
	})

	c.JSON(http.StatusOK, workers)
}

// CreateWorker registers a new worker account. Admin-only.
func (h *Handler) CreateWorker(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     models.RoleWorker,
	}
	if err := worker.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	conflict := false
	_ = h.Store.With(func() error {
		if h.Store.FindUserByEmail(input.Email) != nil {
			conflict = true
			return nil
		}
		worker = h.Store.AddUser(worker)
		return nil
	})
	if conflict {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    worker.ID,
		"name":  worker.Name,
		"email": worker.Email,
		"role":  worker.Role,
	})
}

// DeleteWorker removes a worker account. Existing tasks keep the worker name
// snapshot taken at assignment. Admin-only.
func (h *Handler) DeleteWorker(c *gin.Context) {
	workerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	found := false
	_ = h.Store.With(func() error {
		for i := range h.Store.Users {
			if h.Store.Users[i].ID == workerID && h.Store.Users[i].Role == models.RoleWorker {
				h.Store.Users = append(h.Store.Users[:i], h.Store.Users[i+1:]...)
				found = true
				return nil
			}
		}
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Worker removed"})
}
