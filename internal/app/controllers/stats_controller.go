package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/app/services"
	"github.com/pragati-coe/facultyhub/internal/middleware"
)

// StatsController serves the dashboard aggregates
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// GetDashboardStats retrieves the dashboard aggregates
// @Summary Dashboard statistics
// @Description Faculty headcounts and distributions over the caller's visible records. Publication totals are included for administrative roles only.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats}
// @Router /stats/dashboard [get]
func (c *StatsController) GetDashboardStats(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	stats, err := c.statsService.GetDashboardStats(ctx, ident)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      stats,
		Timestamp: time.Now(),
	})
}
