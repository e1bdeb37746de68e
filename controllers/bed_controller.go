package controllers

import (
	"net/http"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type BedController struct {
	service *services.BedService
}

func NewBedController(service *services.BedService) *BedController {
	return &BedController{service: service}
}

func (bc *BedController) GetBeds(c *gin.Context) {
	roomID, ok := parseUintQuery(c, "roomId")
	if !ok {
		return
	}

	beds, err := bc.service.GetAll(roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, beds)
}

func (bc *BedController) GetBedByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bed, err := bc.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

type bedCreateRequest struct {
	Label  string `json:"label" binding:"required"`
	RoomID uint   `json:"roomId" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
}

func (bc *BedController) CreateBed(c *gin.Context) {
	var req bedCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	bed, err := bc.service.Create(req.RoomID, req.Label, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bed)
}

type bedUpdateRequest struct {
	Label  *string `json:"label"`
	Status *string `json:"status" binding:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`

	// Distinguish "field absent" from "explicit null": null unassigns the
	// bed, a value reassigns it.
	CurrentStudentID optionalUint `json:"currentStudentId"`
}

func (bc *BedController) UpdateBed(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req bedUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	input := services.BedUpdateInput{
		Label:  req.Label,
		Status: req.Status,
	}
	if req.CurrentStudentID.Present {
		input.CurrentStudentID = &req.CurrentStudentID.Value
	}

	bed, err := bc.service.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

func (bc *BedController) DeleteBed(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := bc.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
