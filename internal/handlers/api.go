package handlers

import (
	"errors"
	"net/http"

	"field-sales/internal/database"

	"github.com/gin-gonic/gin"
)

// StoreNames feeds the auto-fill search box.
func StoreNames(c *gin.Context) {
	names, err := database.AllStoreNames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": names})
}

// LastStoreVisit returns the fields the form pre-populates on a re-visit.
// image_data is deliberately left out of the payload.
func LastStoreVisit(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	visit, err := database.LastVisitByStore(name)
	if err != nil {
		if errors.Is(err, database.ErrVisitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load visit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"store_name":     visit.StoreName,
		"phone_number":   visit.PhoneNumber,
		"store_category": visit.StoreCategory,
		"lead_type":      visit.LeadType,
		"products":       visit.Products,
	})
}
