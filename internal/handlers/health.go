package handlers

import (
	"net/http"
	"time"

	"yuletide/internal/dto"

	"github.com/gin-gonic/gin"
)

// isoMillis is ISO-8601 UTC with millisecond precision, e.g. 2025-12-01T10:00:00.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Health godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(isoMillis),
	})
}
