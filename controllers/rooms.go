package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretmission/mission-backend/models"
	"github.com/secretmission/mission-backend/services"
)

type CreateRoomRequest struct {
	Name       string               `json:"name" binding:"required"`
	MaxPlayers int                  `json:"maxPlayers"`
	GameTimer  int                  `json:"gameTimer"` // seconds
	Settings   *models.GameSettings `json:"settings"`
}

// CreateRoom creates a new room in lobby status
func CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := services.Rooms.CreateRoom(req.Name, req.MaxPlayers, req.GameTimer, req.Settings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

type roomWithPlayers struct {
	*models.Room
	Players []*models.Player `json:"players"`
}

// GetRoomByCode fetches a room and its players by join code
func GetRoomByCode(c *gin.Context) {
	room, players, err := services.Rooms.RoomByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomWithPlayers{Room: room, Players: players})
}

// ListRoomPlayers lists the players of a room by join code
func ListRoomPlayers(c *gin.Context) {
	_, players, err := services.Rooms.RoomByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}
