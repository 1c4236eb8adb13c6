package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/secretmission/mission-backend/controllers"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ----------------------
	// Room routes
	// ----------------------
	api.POST("/rooms", controllers.CreateRoom)                   // Create room
	api.GET("/rooms/:code", controllers.GetRoomByCode)           // Get room + players by join code
	api.GET("/rooms/:code/players", controllers.ListRoomPlayers) // List players by join code

	// ----------------------
	// Player routes
	// ----------------------
	api.POST("/players", controllers.JoinRoom) // Join a room

	// ----------------------
	// Mission routes
	// ----------------------
	api.POST("/missions", controllers.SubmitMission)        // Submit a secret mission
	api.GET("/packs/:name", controllers.GetMissionPack)     // Mission prompt suggestions

	// ----------------------
	// Game routes
	// ----------------------
	api.POST("/games/:id/start", controllers.StartGame)    // Start the game
	api.GET("/games/:id/state", controllers.GetGameState)  // Derived game state

	// ----------------------
	// Accusation routes
	// ----------------------
	api.POST("/accusations", controllers.SubmitAccusation) // Accuse a player
}
