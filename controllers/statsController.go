package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanify-be/models"
)

// GetStats computes the dashboard metrics in one guarded pass over the store.
func (h *Handler) GetStats(c *gin.Context) {
	var response gin.H
	_ = h.Store.With(func() error {
		totalBins := len(h.Store.Bins)
		fullBins := 0
		fillSum := 0
		for _, b := range h.Store.Bins {
			if b.Status == models.BinFull || b.Status == models.BinOverflow {
				fullBins++
			}
			fillSum += b.FillLevel
		}

		pendingAlerts := 0
		for _, a := range h.Store.Alerts {
			if a.Status == models.AlertActive {
				pendingAlerts++
			}
		}

		pendingComplaints := 0
		for _, cm := range h.Store.Complaints {
			if cm.Status == models.ComplaintPending {
				pendingComplaints++
			}
		}

		activeWorkers := 0
		for _, u := range h.Store.Users {
			if u.Role == models.RoleWorker {
				activeWorkers++
			}
		}

		avgFill := 0
		collectionRate := 100
		if totalBins > 0 {
			avgFill = int(math.Round(float64(fillSum) / float64(totalBins)))
			collectionRate = int(math.Round(100 - float64(fullBins)/float64(totalBins)*100))
		}

		collections := append([]models.CollectionStat{}, h.Store.Collections...)
		assignments := append([]models.Assignment{}, h.Store.Assignments...)

		response = gin.H{
			"totalBins":         totalBins,
			"fullBins":          fullBins,
			"avgFillLevel":      avgFill,
			"pendingAlerts":     pendingAlerts,
			"pendingComplaints": pendingComplaints,
			"activeWorkers":     activeWorkers,
			"collectionRate":    collectionRate,
			"collections":       collections,
			"assignments":       assignments,
		}
		return nil
	})

	c.JSON(http.StatusOK, response)
}
