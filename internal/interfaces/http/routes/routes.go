// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/domain/catalog"
	"github.com/your-org/rsvp-backend/internal/interfaces/http/handlers"
	"github.com/your-org/rsvp-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cat *catalog.Service, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, redisClient, cat, cfg)
	catalogHandler := handlers.NewCatalogHandler(cat, cfg)
	cartHandler := handlers.NewCartHandler(db, redisClient, cat, cfg)
	summaryHandler := handlers.NewSummaryHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/signin", authHandler.SignIn)

		protected := auth.Group("")
		protected.Use(middleware.RequireSession(cfg))
		{
			protected.POST("/signout", authHandler.SignOut)
			protected.GET("/session", authHandler.Session)
		}
	}

	// Public catalog browsing
	rg.GET("/catalog", catalogHandler.GetCatalog)

	cart := rg.Group("/cart")
	cart.Use(middleware.RequireSession(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.PATCH("/items/:id", cartHandler.UpdateItem)
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.RequireSession(cfg))
	{
		orders.POST("", cartHandler.Submit)
	}

	// Organizer-facing summary; fetched per view, not live-subscribed
	summaryRoutes := rg.Group("/summary")
	{
		summaryRoutes.GET("", summaryHandler.GetSummary)
		summaryRoutes.GET("/export", summaryHandler.ExportSummary)
	}
}
