package controllers

import (
	"net/http"
	"strconv"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	service *services.StudentService
}

func NewStudentController(service *services.StudentService) *StudentController {
	return &StudentController{service: service}
}

func (sc *StudentController) GetStudents(c *gin.Context) {
	var isActive *bool
	if raw := c.Query("isActive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid isActive"})
			return
		}
		isActive = &v
	}

	students, err := sc.service.GetAll(isActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (sc *StudentController) GetStudentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	student, err := sc.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

type studentCreateRequest struct {
	Name             string `json:"name" binding:"required"`
	Age              int    `json:"age" binding:"required,gt=0"`
	PhoneNumber      string `json:"phoneNumber" binding:"required,phone"`
	Email            string `json:"email" binding:"omitempty,email"`
	EmergencyContact string `json:"emergencyContact" binding:"required,phone"`
	Address          string `json:"address"`
	IsActive         *bool  `json:"isActive"`
}

func (sc *StudentController) CreateStudent(c *gin.Context) {
	var req studentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	student, err := sc.service.Create(services.StudentInput{
		Name:             req.Name,
		Age:              req.Age,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		EmergencyContact: req.EmergencyContact,
		Address:          req.Address,
		IsActive:         req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

type studentUpdateRequest struct {
	Name             *string `json:"name"`
	Age              *int    `json:"age" binding:"omitempty,gt=0"`
	PhoneNumber      *string `json:"phoneNumber" binding:"omitempty,phone"`
	Email            *string `json:"email" binding:"omitempty,email"`
	EmergencyContact *string `json:"emergencyContact" binding:"omitempty,phone"`
	Address          *string `json:"address"`
	IsActive         *bool   `json:"isActive"`
}

func (sc *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req studentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	student, err := sc.service.Update(id, services.StudentUpdateInput{
		Name:             req.Name,
		Age:              req.Age,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		EmergencyContact: req.EmergencyContact,
		Address:          req.Address,
		IsActive:         req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// DeleteStudent is a soft delete: the student is marked departed, the bed is
// freed, and bookings, payments and complaints stay as history.
func (sc *StudentController) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := sc.service.Release(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
