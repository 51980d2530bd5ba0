package main

import (
	"log"
	"net/http"
	"os"

	"github.com/visourastudio-blip/pizza-do-ze/cart"
	"github.com/visourastudio-blip/pizza-do-ze/config"
	"github.com/visourastudio-blip/pizza-do-ze/payment"
	"github.com/visourastudio-blip/pizza-do-ze/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Carts live for the process lifetime, snapshotted to the database
	// on every mutation.
	carts := cart.NewManager(cart.NewGormStore(config.DB))

	pix := payment.NewClient(
		config.GetEnv("ABACATEPAY_BASE_URL", payment.DefaultBaseURL),
		config.GetEnv("ABACATEPAY_API_KEY", ""),
	)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Pizza do Zé Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍕 Welcome to the Pizza do Zé Ordering API",
			"docs":    "/api/status-flow",
			"health":  "/health",
			"menu":    "/api/menu",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, carts, pix)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
