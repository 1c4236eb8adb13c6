package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/secretmission/mission-backend/config"
	"github.com/secretmission/mission-backend/routes"
	"github.com/secretmission/mission-backend/services"
	"github.com/secretmission/mission-backend/store"
)

// initEnv loads .env file if present
func initEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}
}

// newStore picks the record store: Postgres when DATABASE_URL is set,
// in-memory otherwise
func newStore() store.Store {
	if os.Getenv("DATABASE_URL") == "" {
		log.Println("[INFO] DATABASE_URL not set, using in-memory store")
		return store.NewMemoryStore()
	}
	db := config.SetupDatabase()
	return store.NewGormStore(db)
}

// setupRouter initializes Gin routes and middleware
func setupRouter() *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// CORS middleware
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origins},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket endpoint for realtime room events
	r.GET("/ws", services.HandleWebSocket)

	return r
}

func main() {
	// Load env variables
	initEnv()

	// Initialize game services on the chosen store
	services.InitGameService(newStore())
	services.LoadMissionPacks("missions.json")

	// Setup Gin router
	router := setupRouter()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000" // default from config
	}

	log.Printf("🚀 Secret Mission backend starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
