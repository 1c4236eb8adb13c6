package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretmission/mission-backend/services"
)

// StartGame assigns missions and transitions the room to playing
func StartGame(c *gin.Context) {
	if err := services.Rooms.StartGame(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game started successfully"})
}

// GetGameState returns the derived game state for a room
func GetGameState(c *gin.Context) {
	state, err := services.Rooms.GetGameState(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
