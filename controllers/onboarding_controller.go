package controllers

import (
	"net/http"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	service *services.OnboardingService
}

func NewOnboardingController(service *services.OnboardingService) *OnboardingController {
	return &OnboardingController{service: service}
}

type onboardingRequest struct {
	Name             string `json:"name" binding:"required"`
	Age              int    `json:"age" binding:"required,gt=0"`
	PhoneNumber      string `json:"phoneNumber" binding:"required,phone"`
	Email            string `json:"email" binding:"omitempty,email"`
	EmergencyContact string `json:"emergencyContact" binding:"required,phone"`
	Address          string `json:"address"`

	BedID uint `json:"bedId" binding:"required"`

	Frequency   string  `json:"frequency" binding:"required,oneof=MONTHLY YEARLY EXCEPTION"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	TotalAmount float64 `json:"totalAmount" binding:"gte=0"`

	PaymentMethod  string  `json:"paymentMethod" binding:"required,oneof=UPI_REQUEST QR_SCAN CASH_OFFLINE"`
	TransactionRef *string `json:"transactionRef"`
}

// Onboard handles POST /onboarding: the whole move-in as one transaction.
func (oc *OnboardingController) Onboard(c *gin.Context) {
	var req onboardingRequest
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

	result, err := oc.service.Onboard(services.OnboardingInput{
		Name:             req.Name,
		Age:              req.Age,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		EmergencyContact: req.EmergencyContact,
		Address:          req.Address,
		BedID:            req.BedID,
		Frequency:        req.Frequency,
		StartDate:        start,
		EndDate:          end,
		TotalAmount:      req.TotalAmount,
		PaymentMethod:    req.PaymentMethod,
		TransactionRef:   req.TransactionRef,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
