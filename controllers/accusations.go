package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretmission/mission-backend/services"
)

type SubmitAccusationRequest struct {
	RoomID    string `json:"roomId" binding:"required"`
	AccuserID string `json:"accuserId" binding:"required"`
	AccusedID string `json:"accusedId" binding:"required"`
	Guess     string `json:"guess" binding:"required"`
}

// SubmitAccusation resolves one player's guess at another's mission
func SubmitAccusation(c *gin.Context) {
	var req SubmitAccusationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isCorrect, state, err := services.Rooms.SubmitAccusation(req.RoomID, req.AccuserID, req.AccusedID, req.Guess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isCorrect": isCorrect, "gameState": state})
}
