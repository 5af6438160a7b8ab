package controllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"cleanify-be/models"
)

// GetAlerts returns all alerts, newest first.
func (h *Handler) GetAlerts(c *gin.Context) {
	alerts := []models.Alert{}
	_ = h.Store.With(func() error {
		alerts = append(alerts, h.Store.Alerts...)
		return nil
	})

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})

	c.JSON(http.StatusOK, alerts)
}

// ResolveAlert marks the alert resolved and collects its bin, which also
// resolves any other active alert on that bin.
func (h *Handler) ResolveAlert(c *gin.Context) {
	alertID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alert ID"})
		return
	}

	var resolved models.Alert
	found := false
	_ = h.Store.With(func() error {
		a := h.Store.FindAlert(alertID)
		if a == nil {
			return nil
		}
		a.Status = models.AlertResolved
		h.Store.CollectBin(a.BinID)
		resolved = *a
		found = true
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Alert resolved",
		"alert":   resolved,
	})
}
