package controllers

import (
	"net/http"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	studentID, ok := parseUintQuery(c, "studentId")
	if !ok {
		return
	}

	bookings, err := bc.service.GetAll(studentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := bc.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type bookingCreateRequest struct {
	StudentID   uint    `json:"studentId" binding:"required"`
	Frequency   string  `json:"frequency" binding:"required,oneof=MONTHLY YEARLY EXCEPTION"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	TotalAmount float64 `json:"totalAmount" binding:"gte=0"`
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req bookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
		return
	}

	booking, err := bc.service.Create(req.StudentID, req.Frequency, start, end, req.TotalAmount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

type bookingUpdateRequest struct {
	Frequency   *string  `json:"frequency" binding:"omitempty,oneof=MONTHLY YEARLY EXCEPTION"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	TotalAmount *float64 `json:"totalAmount" binding:"omitempty,gte=0"`
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req bookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	input := services.BookingUpdateInput{
		Frequency:   req.Frequency,
		TotalAmount: req.TotalAmount,
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		input.EndDate = &end
	}

	booking, err := bc.service.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
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
