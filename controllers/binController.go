package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cleanify-be/models"
)

// GetBins returns every bin, copied out under the guard.
func (h *Handler) GetBins(c *gin.Context) {
	bins := []models.Bin{}
	_ = h.Store.With(func() error {
		bins = append(bins, h.Store.Bins...)
		return nil
	})

	c.JSON(http.StatusOK, bins)
}

// CollectBin empties a bin, refreshes lastCollected and resolves every active
// alert on it. Any authenticated caller may collect.
func (h *Handler) CollectBin(c *gin.Context) {
	binID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bin ID"})
		return
	}

	var collected models.Bin
	found := false
	_ = h.Store.With(func() error {
		if b := h.Store.CollectBin(binID); b != nil {
			collected = *b
			found = true
		}
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Bin %d collected", binID),
		"bin":     collected,
	})
}
