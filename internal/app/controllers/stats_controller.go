package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contractors/internal/app/models/dto"
	"github.com/yigit/contractors/internal/app/services"
	"github.com/yigit/contractors/internal/middleware"
)

// StatsController serves aggregate head counts
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetStats returns totals and per-department and per-band counts
// @Summary Contractor statistics
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse} "Statistics computed successfully"
// @Failure 500 {object} dto.APIResponse "Database failure"
// @Router /stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
