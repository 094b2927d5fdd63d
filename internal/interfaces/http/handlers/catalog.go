// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/domain/catalog"
)

// CatalogHandler serves the fixed product catalog
type CatalogHandler struct {
	catalog *catalog.Service
	config  *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Service, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		config:  cfg,
	}
}

// GetCatalog handles GET /catalog with optional category and search filters
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	categoryID := c.DefaultQuery("category", catalog.CategoryAll)
	search := c.Query("search")

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog retrieved successfully",
		"data": gin.H{
			"products":   h.catalog.Filter(categoryID, search),
			"categories": h.catalog.Categories(),
		},
	})
}
