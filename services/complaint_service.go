package services

import (
	"errors"
	"fmt"
	"time"

	"hostel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ComplaintService struct {
	DB *gorm.DB
}

func NewComplaintService(db *gorm.DB) *ComplaintService {
	return &ComplaintService{DB: db}
}

type ComplaintFilter struct {
	Status    *string
	RoomID    *uint
	StudentID *uint
}

func (s *ComplaintService) GetAll(filter ComplaintFilter) ([]models.Complaint, error) {
	var complaints []models.Complaint
	q := s.DB.Preload("Room.Property").Preload("Student").Order("created_at DESC")
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.RoomID != nil {
		q = q.Where("room_id = ?", *filter.RoomID)
	}
	if filter.StudentID != nil {
		q = q.Where("student_id = ?", *filter.StudentID)
	}
	err := q.Find(&complaints).Error
	return complaints, err
}

func (s *ComplaintService) GetByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.Preload("Room.Property").Preload("Student").First(&complaint, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

type ComplaintInput struct {
	Category    string
	Description string
	RoomID      uint
	StudentID   *uint
	Attachments datatypes.JSON
}

func (s *ComplaintService) Create(input ComplaintInput) (*models.Complaint, error) {
	var room models.Room
	if err := s.DB.First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if input.StudentID != nil {
		var student models.Student
		if err := s.DB.First(&student, *input.StudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStudentNotFound
			}
			return nil, err
		}
	}

	complaint := models.Complaint{
		Category:    input.Category,
		Description: input.Description,
		RoomID:      input.RoomID,
		StudentID:   input.StudentID,
		Status:      models.ComplaintOpen,
		Attachments: input.Attachments,
	}
	if err := s.DB.Create(&complaint).Error; err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}

	return s.GetByID(complaint.ID)
}

type ComplaintUpdateInput struct {
	Category    *string
	Description *string
	Status      *string
}

// Update sets resolvedAt when the complaint flips to RESOLVED and clears it
// again if the complaint is reopened.
func (s *ComplaintService) Update(id uint, input ComplaintUpdateInput) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		updates["status"] = *input.Status
		if *input.Status == models.ComplaintResolved && complaint.Status != models.ComplaintResolved {
			updates["resolved_at"] = time.Now()
		} else if *input.Status == models.ComplaintOpen {
			updates["resolved_at"] = nil
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&complaint).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

func (s *ComplaintService) Delete(id uint) error {
	res := s.DB.Delete(&models.Complaint{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrComplaintNotFound
	}
	return nil
}
