// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/domain/cart"
	"github.com/your-org/rsvp-backend/internal/domain/catalog"
	"github.com/your-org/rsvp-backend/internal/domain/reservation"
	"github.com/your-org/rsvp-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, redisClient *redis.Client, cat *catalog.Service, cfg *config.Config) *CartHandler {
	rsvService := reservation.NewService(db, cfg)
	return &CartHandler{
		cartService: cart.NewService(db, redisClient, cat, rsvService, cfg),
		config:      cfg,
	}
}

// GetCart handles GET /cart. The default view is the dense catalog-ordered
// list; ?view=cart returns only the chosen lines.
func (h *CartHandler) GetCart(c *gin.Context) {
	phone, _ := middleware.GetPhoneFromContext(c)

	cartState, err := h.cartService.GetCart(c.Request.Context(), phone)
	if errors.Is(err, reservation.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	items := cartState.Items
	if c.Query("view") == "cart" {
		items = cart.ForSubmission(items)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"items":       items,
			"price_total": cartState.PriceTotal,
			"updated_at":  cartState.UpdatedAt,
		},
	})
}

// UpdateItem handles PATCH /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	phone, _ := middleware.GetPhoneFromContext(c)
	productID := c.Param("id")

	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartState, err := h.cartService.UpdateItem(c.Request.Context(), phone, productID, req.Delta)
	if errors.Is(err, reservation.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"data": gin.H{
			"items":       cartState.Items,
			"price_total": cartState.PriceTotal,
			"updated_at":  cartState.UpdatedAt,
		},
	})
}

// Submit handles POST /orders: project the cart down to its qty > 0 lines
// and replace the persisted order wholesale. Last writer wins.
func (h *CartHandler) Submit(c *gin.Context) {
	phone, _ := middleware.GetPhoneFromContext(c)

	row, err := h.cartService.Submit(c.Request.Context(), phone)
	if errors.Is(err, reservation.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to submit order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order submitted successfully",
		"data":    row,
	})
}
