package controllers

import (
	"net/http"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	bookingID, ok := parseUintQuery(c, "bookingId")
	if !ok {
		return
	}

	payments, err := pc.service.GetAll(bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payment, err := pc.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

type paymentCreateRequest struct {
	BookingID      uint    `json:"bookingId" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	Method         string  `json:"method" binding:"required,oneof=UPI_REQUEST QR_SCAN CASH_OFFLINE"`
	TransactionRef *string `json:"transactionRef"`
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req paymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	payment, err := pc.service.Create(req.BookingID, req.Amount, req.Method, req.TransactionRef)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

type paymentUpdateRequest struct {
	Method         *string `json:"method" binding:"omitempty,oneof=UPI_REQUEST QR_SCAN CASH_OFFLINE"`
	TransactionRef *string `json:"transactionRef"`
}

func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req paymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	payment, err := pc.service.Update(id, services.PaymentUpdateInput{
		Method:         req.Method,
		TransactionRef: req.TransactionRef,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (pc *PaymentController) DeletePayment(c *gin.Context) {
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
