package controllers

import (
	"net/http"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.service.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
