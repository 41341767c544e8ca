package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"art-auction-backend/internal/models"
)

// HealthHandler is the liveness probe.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
