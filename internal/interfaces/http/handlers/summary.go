// internal/interfaces/http/handlers/summary.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/domain/reservation"
	"github.com/your-org/rsvp-backend/internal/domain/summary"
	"github.com/your-org/rsvp-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// SummaryHandler serves the organizer summary view
type SummaryHandler struct {
	summaryService *summary.Service
	pdfService     *pdf.Service
	config         *config.Config
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(db *gorm.DB, cfg *config.Config) *SummaryHandler {
	rsvService := reservation.NewService(db, cfg)
	return &SummaryHandler{
		summaryService: summary.NewService(rsvService, cfg),
		pdfService:     pdf.NewService(cfg),
		config:         cfg,
	}
}

// GetSummary handles GET /summary
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	result, err := h.summaryService.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Summary retrieved successfully",
		"data":    result,
	})
}

// ExportSummary handles GET /summary/export, returning a PDF rendering
func (h *SummaryHandler) ExportSummary(c *gin.Context) {
	result, err := h.summaryService.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load summary",
		})
		return
	}

	buf, err := h.pdfService.GenerateSummary(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate PDF",
		})
		return
	}

	filename := fmt.Sprintf("summary-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
