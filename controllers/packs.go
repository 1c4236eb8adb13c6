package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretmission/mission-backend/services"
)

// GetMissionPack returns the mission prompts of a named pack
func GetMissionPack(c *gin.Context) {
	name := c.Param("name")
	prompts, err := services.GetMissionPack(name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "missions": prompts})
}
