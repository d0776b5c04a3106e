package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shiftline-backend/api/handlers"
	"shiftline-backend/api/middleware"
	"shiftline-backend/shared/config"
	"shiftline-backend/shared/database"
	"shiftline-backend/shared/logger"
	"shiftline-backend/shared/utils/cache"
)

// @title ShiftLine API
// @version 1.0
// @description Multi-tenant employee scheduling backend

func main() {
	// Load configuration
	config.LoadConfig()
	cfg := config.GetConfig()

	// Initialize logger
	if err := logger.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Initialize cache (best effort; the API runs without redis)
	if err := cache.InitCacheManager(); err != nil {
		log.Printf("⚠️ Redis unavailable, rate limiting and report cache disabled: %v", err)
	}

	// Seed demo data on first run
	if err := database.SeedDatabase(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.GetLogger()))
	router.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", middleware.MetricsHandler())

	api := router.Group("/api")

	// Public auth endpoints
	api.POST("/auth/register", middleware.LoginRateLimit(), handlers.Register)
	api.POST("/auth/login", middleware.LoginRateLimit(), handlers.Login)
	api.POST("/auth/logout", handlers.Logout)

	// Authenticated endpoints
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/me", handlers.Me)
		auth.POST("/auth/change-password", handlers.ChangePassword)

		auth.GET("/users", handlers.GetUsers)
		auth.POST("/users", middleware.RequireManager(), handlers.CreateUser)
		auth.PATCH("/users/:id", handlers.UpdateUser)

		auth.GET("/locations", handlers.GetLocations)
		auth.POST("/locations", middleware.RequireManager(), handlers.CreateLocation)
		auth.PATCH("/locations/:id", middleware.RequireManager(), handlers.UpdateLocation)

		auth.GET("/shifts", handlers.GetShifts)
		auth.POST("/shifts", middleware.RequireManager(), handlers.CreateShift)
		auth.PATCH("/shifts/:id", middleware.RequireManager(), handlers.UpdateShift)
		auth.DELETE("/shifts/:id", middleware.RequireManager(), handlers.DeleteShift)

		auth.GET("/time-off", handlers.GetTimeOffRequests)
		auth.POST("/time-off", handlers.CreateTimeOffRequest)
		auth.PATCH("/time-off/:id", middleware.RequireManager(), handlers.ReviewTimeOffRequest)

		auth.GET("/swaps", handlers.GetSwaps)
		auth.POST("/swaps", handlers.CreateSwap)
		auth.PATCH("/swaps/:id", middleware.RequireManager(), handlers.ReviewSwap)

		auth.GET("/notifications", handlers.GetNotifications)
		auth.PATCH("/notifications/:id", handlers.UpdateNotification)
		auth.POST("/notifications/mark-all-read", handlers.MarkAllNotificationsRead)

		auth.GET("/messages", handlers.GetMessages)
		auth.POST("/messages", handlers.CreateMessage)
		auth.PATCH("/messages/:id", handlers.UpdateMessage)

		auth.GET("/availability", handlers.GetAvailability)
		auth.POST("/availability", handlers.CreateAvailability)
		auth.DELETE("/availability/:id", handlers.DeleteAvailability)

		auth.GET("/reports", middleware.RequireOwner(), handlers.GetReports)
	}

	log.Printf("🚀 ShiftLine API starting on %s", cfg.ServerAddr)
	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
