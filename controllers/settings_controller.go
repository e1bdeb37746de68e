package controllers

import (
	"net/http"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	service *services.SettingsService
}

func NewSettingsController(service *services.SettingsService) *SettingsController {
	return &SettingsController{service: service}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	setting, err := sc.service.Get()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

type settingsUpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req settingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	setting, err := sc.service.Update(services.SettingsInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
