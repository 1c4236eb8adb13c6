package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretmission/mission-backend/models"
	"github.com/secretmission/mission-backend/utils/logger"
)

// respondError maps the game's error kinds to HTTP statuses. Anything
// unexpected is logged and reported as a 500 without leaking details.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrRoomFull), errors.Is(err, models.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrPreconditionFailed), errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Errorf("[API] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
