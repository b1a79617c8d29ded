package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contractors/internal/app/models/dto"
)

const healthMessage = "Contractor Management System API is running"

// HealthController reports liveness without touching the database
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health reports that the process is serving
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Message: healthMessage})
}
