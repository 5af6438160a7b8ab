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

// Media types accepted for complaint attachments. Complaints allow short
// video clips in addition to the image types tasks accept.
var complaintMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

// GetComplaints lists complaints newest-first. Citizens see only their own;
// admin and workers see the full collection.
func (h *Handler) GetComplaints(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// Empty results serialize as [] rather than null.
	complaints := []models.Complaint{}
	_ = h.Store.With(func() error {
		for _, cm := range h.Store.Complaints {
			if user.Role == models.RoleCitizen && cm.UserID != user.ID {
				continue
			}
			complaints = append(complaints, cm)
		}
		return nil
	})

	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].CreatedAt.After(complaints[j].CreatedAt)
	})

	c.JSON(http.StatusOK, complaints)
}

// CreateComplaint files a complaint and pays out submission points in the
// same guarded section as the append, so the ledger is never observed without
// the complaint already present.
func (h *Handler) CreateComplaint(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Location    string   `json:"location" binding:"required,max=200"`
		Description string   `json:"description" binding:"required,max=1000"`
		Latitude    *float64 `json:"latitude,omitempty"`
		Longitude   *float64 `json:"longitude,omitempty"`
		MediaURLs   []string `json:"media_urls,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var created models.Complaint
	_ = h.Store.With(func() error {
		created = h.Store.AddComplaint(models.Complaint{
			UserID:      user.ID,
			UserName:    user.Name,
			Location:    input.Location,
			Description: input.Description,
			Latitude:    input.Latitude,
			Longitude:   input.Longitude,
			MediaURLs:   input.MediaURLs,
			Status:      models.ComplaintPending,
			CreatedAt:   h.Store.Now(),
		})

		h.Store.Award(user.ID, "Complaint submitted", models.PointsComplaintSubmitted)
		if len(input.MediaURLs) > 0 {
			h.Store.Award(user.ID, "Media attached", models.PointsMediaAttached)
		}
		if input.Latitude != nil && input.Longitude != nil {
			h.Store.Award(user.ID, "Location shared", models.PointsLocationShared)
		}
		return nil
	})

	c.JSON(http.StatusCreated, created)
}

// RespondComplaint records an admin response and moves the complaint to the
// supplied status. Admin-only; the role gate runs before the store is touched.
func (h *Handler) RespondComplaint(c *gin.Context) {
	complaintID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var input struct {
		Response string `json:"response" binding:"required"`
		Status   string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := models.ComplaintStatus(input.Status)
	if input.Status == "" {
		status = models.ComplaintInProgress
	}
	if status != models.ComplaintInProgress && status != models.ComplaintResolved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var updated models.Complaint
	found := false
	_ = h.Store.With(func() error {
		cm := h.Store.FindComplaint(complaintID)
		if cm == nil {
			return nil
		}
		now := h.Store.Now()
		cm.Response = &input.Response
		cm.RespondedAt = &now
		if status == models.ComplaintResolved {
			h.Store.ResolveComplaint(cm)
		} else if cm.Status != models.ComplaintResolved {
			cm.Status = models.ComplaintInProgress
		}
		updated = *cm
		found = true
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Response recorded",
		"complaint": updated,
	})
}

// ResolveComplaint force-resolves a complaint. The resolution bonus is paid
// only when the complaint was not already resolved.
func (h *Handler) ResolveComplaint(c *gin.Context) {
	complaintID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var updated models.Complaint
	found := false
	_ = h.Store.With(func() error {
		cm := h.Store.FindComplaint(complaintID)
		if cm == nil {
			return nil
		}
		h.Store.ResolveComplaint(cm)
		updated = *cm
		found = true
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Complaint resolved",
		"complaint": updated,
	})
}

// GetRewards returns the caller's reward ledger. Callers with no ledger yet
// get an empty Bronze one.
func (h *Handler) GetRewards(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reward := models.Reward{Level: models.LevelBronze, History: []models.RewardEntry{}}
	_ = h.Store.With(func() error {
		if r, exists := h.Store.Rewards[user.ID]; exists {
			reward.Points = r.Points
			reward.Level = r.Level
			reward.History = append(reward.History, r.History...)
		}
		return nil
	})

	c.JSON(http.StatusOK, reward)
}

// UploadComplaintMedia stores a media file and returns its URL for inclusion
// in a subsequent complaint submission. The file write happens without the
// guard; nothing here touches shared state.
func (h *Handler) UploadComplaintMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !complaintMediaTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only images (JPEG/PNG/WebP/GIF) and videos (MP4/WebM/QuickTime) are allowed"})
		return
	}

	ext := "jpg"
	if i := strings.LastIndex(file.Filename, "."); i >= 0 && i < len(file.Filename)-1 {
		ext = file.Filename[i+1:]
	}
	filename := "complaint_" + strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext

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

	c.JSON(http.StatusOK, gin.H{
		"url":      "/api/complaints/media/" + filename,
		"filename": filename,
	})
}

// GetComplaintMedia serves an uploaded complaint attachment.
func (h *Handler) GetComplaintMedia(c *gin.Context) {
	h.serveMedia(c)
}

// serveMedia streams a file from the upload directory.
func (h *Handler) serveMedia(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.UploadDir, filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.File(path)
}
