package controllers

import (
	"net/http"
	"strconv"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{}

	propertyID, ok := parseUintQuery(c, "propertyId")
	if !ok {
		return
	}
	filter.PropertyID = propertyID

	if raw := c.Query("floorNumber"); raw != "" {
		floor, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid floorNumber"})
			return
		}
		filter.FloorNumber = &floor
	}

	rooms, err := rc.service.GetAll(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := rc.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type roomCreateRequest struct {
	RoomNumber  string `json:"roomNumber" binding:"required"`
	FloorNumber int    `json:"floorNumber" binding:"gte=0"`
	Type        string `json:"type" binding:"required,oneof=AC NON_AC"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	PropertyID  uint   `json:"propertyId" binding:"required"`
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req roomCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	room, err := rc.service.Create(services.RoomInput{
		RoomNumber:  req.RoomNumber,
		FloorNumber: req.FloorNumber,
		Type:        req.Type,
		Capacity:    req.Capacity,
		PropertyID:  req.PropertyID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

type roomUpdateRequest struct {
	RoomNumber  *string `json:"roomNumber"`
	FloorNumber *int    `json:"floorNumber" binding:"omitempty,gte=0"`
	Type        *string `json:"type" binding:"omitempty,oneof=AC NON_AC"`
	Capacity    *int    `json:"capacity" binding:"omitempty,gt=0"`
	PropertyID  *uint   `json:"propertyId"`
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req roomUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	room, err := rc.service.Update(id, services.RoomUpdateInput{
		RoomNumber:  req.RoomNumber,
		FloorNumber: req.FloorNumber,
		Type:        req.Type,
		Capacity:    req.Capacity,
		PropertyID:  req.PropertyID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := rc.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
