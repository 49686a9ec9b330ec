package controllers

import (
	"time"

	"boystrip/internal/services"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Trip overview
// @Description Countdown, headcounts, room occupancy and pending AI payments
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response_models.Dashboard
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	dashboard, err := d.dashboardService.GetDashboard(c.Request.Context(), time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}
