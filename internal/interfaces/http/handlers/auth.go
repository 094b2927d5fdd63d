// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/domain/cart"
	"github.com/your-org/rsvp-backend/internal/domain/catalog"
	"github.com/your-org/rsvp-backend/internal/domain/reservation"
	"github.com/your-org/rsvp-backend/internal/interfaces/http/middleware"
	"github.com/your-org/rsvp-backend/internal/pkg/session"
	"gorm.io/gorm"
)

// AuthHandler handles sign-in, sign-out and session restore
type AuthHandler struct {
	rsvService  *reservation.Service
	cartService *cart.Service
	sessions    *session.Manager
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, redisClient *redis.Client, cat *catalog.Service, cfg *config.Config) *AuthHandler {
	rsvService := reservation.NewService(db, cfg)
	return &AuthHandler{
		rsvService:  rsvService,
		cartService: cart.NewService(db, redisClient, cat, rsvService, cfg),
		sessions:    session.NewManager(cfg),
		config:      cfg,
	}
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req reservation.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request data",
			"fields": signInFieldErrors(err),
		})
		return
	}

	row, err := h.rsvService.SignIn(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save reservation",
		})
		return
	}

	token, err := h.sessions.Generate(row.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in successfully",
		"data": gin.H{
			"token":       token,
			"reservation": row,
		},
	})
}

// SignOut handles POST /auth/signout. Dropping the cart resets the working
// state; the reservation row itself stays.
func (h *AuthHandler) SignOut(c *gin.Context) {
	phone, _ := middleware.GetPhoneFromContext(c)

	if err := h.cartService.Clear(c.Request.Context(), phone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to sign out",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed out successfully",
	})
}

// Session handles GET /auth/session. A valid token whose phone no longer
// resolves to a reservation is a stale session and yields 401.
func (h *AuthHandler) Session(c *gin.Context) {
	phone, _ := middleware.GetPhoneFromContext(c)

	row, err := h.rsvService.GetByPhone(phone)
	if errors.Is(err, reservation.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No reservation for this session",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load reservation",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session is valid",
		"data":    row,
	})
}

// signInFieldErrors maps binding failures to per-field messages so the form
// can render them inline.
func signInFieldErrors(err error) gin.H {
	fields := gin.H{}
	msg := err.Error()
	if strings.Contains(msg, "Phone") {
		fields["phone"] = "Phone number must be at least 10 digits"
	}
	if strings.Contains(msg, "Name") {
		fields["name"] = "Name must be at least 2 characters"
	}
	if len(fields) == 0 {
		fields["request"] = "Malformed request body"
	}
	return fields
}
