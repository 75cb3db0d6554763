package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"police-feedback-server/config"
	"police-feedback-server/database"
	"police-feedback-server/middleware"
	"police-feedback-server/routes"
	ws "police-feedback-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Input validation
	router.Use(middleware.InputValidationMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())

	// CORS
	router.Use(middleware.CORSMiddleware())

	// Liveness probe for deployment health checks
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Police Feedback Server is running",
			"time":    time.Now().UTC(),
		})
	}
	router.GET("/health", healthHandler)
	// Kept for the original mobile client, which probes /test
	router.GET("/test", healthHandler)

	// Live admin feed: hub broadcasting accepted submissions to dashboards
	adminHub := ws.NewHub()
	go adminHub.Run()
	routes.SetAdminHub(adminHub)

	// API routes
	api := router.Group("/api")
	{
		// Public read endpoints
		routes.RegisterOfficerRoutes(api)

		// Feedback submission
		routes.RegisterFeedbackRoutes(api)

		// Admin authentication (no auth required) - with strict rate limiting
		adminAuth := api.Group("/admin/auth")
		adminAuth.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAdminAuthRoutes(adminAuth)

		// Admin dashboard (protected)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(routes.AdminAuthMiddleware())
		routes.RegisterAdminRoutes(adminRoutes)

		// Admin websocket feed (token passed as query parameter)
		api.GET("/ws/admin", ws.AdminFeedHandler(adminHub))
	}

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = config.AppConfig.Server.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
