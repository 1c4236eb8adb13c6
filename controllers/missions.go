package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretmission/mission-backend/services"
)

type SubmitMissionRequest struct {
	RoomID   string `json:"roomId" binding:"required"`
	AuthorID string `json:"authorId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// SubmitMission records a player's secret mission
func SubmitMission(c *gin.Context) {
	var req SubmitMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mission, err := services.Rooms.SubmitMission(req.RoomID, req.AuthorID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mission)
}
