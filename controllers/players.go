package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretmission/mission-backend/services"
)

type JoinRoomRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// JoinRoom adds a player to a lobby room by join code
func JoinRoom(c *gin.Context) {
	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := services.Rooms.JoinRoom(req.Code, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}
