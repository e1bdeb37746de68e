package controllers

import (
	"net/http"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type PropertyController struct {
	service *services.PropertyService
}

func NewPropertyController(service *services.PropertyService) *PropertyController {
	return &PropertyController{service: service}
}

// GetProperties returns the floor-grouped projection the floor map renders.
func (pc *PropertyController) GetProperties(c *gin.Context) {
	properties, err := pc.service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetPropertyByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	property, err := pc.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

type propertyCreateRequest struct {
	Name        string         `json:"name" binding:"required"`
	Address     string         `json:"address"`
	TotalFloors int            `json:"totalFloors" binding:"omitempty,gt=0"`
	Amenities   datatypes.JSON `json:"amenities"`
}

func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var req propertyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	property, err := pc.service.Create(services.PropertyInput{
		Name:        req.Name,
		Address:     req.Address,
		TotalFloors: req.TotalFloors,
		Amenities:   req.Amenities,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

type propertyUpdateRequest struct {
	Name        *string        `json:"name"`
	Address     *string        `json:"address"`
	TotalFloors *int           `json:"totalFloors" binding:"omitempty,gt=0"`
	Amenities   datatypes.JSON `json:"amenities"`
}

func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req propertyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	property, err := pc.service.Update(id, services.PropertyUpdateInput{
		Name:        req.Name,
		Address:     req.Address,
		TotalFloors: req.TotalFloors,
		Amenities:   req.Amenities,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := pc.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
