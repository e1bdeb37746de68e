package controllers

import (
	"net/http"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ComplaintController struct {
	service *services.ComplaintService
}

func NewComplaintController(service *services.ComplaintService) *ComplaintController {
	return &ComplaintController{service: service}
}

func (cc *ComplaintController) GetComplaints(c *gin.Context) {
	filter := services.ComplaintFilter{}

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	roomID, ok := parseUintQuery(c, "roomId")
	if !ok {
		return
	}
	filter.RoomID = roomID

	studentID, ok := parseUintQuery(c, "studentId")
	if !ok {
		return
	}
	filter.StudentID = studentID

	complaints, err := cc.service.GetAll(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

func (cc *ComplaintController) GetComplaintByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	complaint, err := cc.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

type complaintCreateRequest struct {
	Category    string         `json:"category" binding:"required,oneof=PLUMBING ELECTRICAL CLEANING OTHER"`
	Description string         `json:"description" binding:"required"`
	RoomID      uint           `json:"roomId" binding:"required"`
	StudentID   *uint          `json:"studentId"`
	Attachments datatypes.JSON `json:"attachments"`
}

func (cc *ComplaintController) CreateComplaint(c *gin.Context) {
	var req complaintCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	complaint, err := cc.service.Create(services.ComplaintInput{
		Category:    req.Category,
		Description: req.Description,
		RoomID:      req.RoomID,
		StudentID:   req.StudentID,
		Attachments: req.Attachments,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

type complaintUpdateRequest struct {
	Category    *string `json:"category" binding:"omitempty,oneof=PLUMBING ELECTRICAL CLEANING OTHER"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=OPEN RESOLVED"`
}

func (cc *ComplaintController) UpdateComplaint(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req complaintUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	complaint, err := cc.service.Update(id, services.ComplaintUpdateInput{
		Category:    req.Category,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

func (cc *ComplaintController) DeleteComplaint(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
