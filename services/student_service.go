package services

import (
	"errors"
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

func (s *StudentService) GetAll(isActive *bool) ([]models.Student, error) {
	var students []models.Student
	q := s.DB.
		Preload("AssignedBed.Room.Property").
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date DESC")
		}).
		Preload("Bookings.Payment").
		Preload("Complaints", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("created_at DESC")
	if isActive != nil {
		q = q.Where("is_active = ?", *isActive)
	}
	err := q.Find(&students).Error
	return students, err
}

func (s *StudentService) GetByID(id uint) (*models.Student, error) {
	var student models.Student
	err := s.DB.
		Preload("AssignedBed.Room.Property").
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date DESC")
		}).
		Preload("Bookings.Payment").
		Preload("Complaints", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

type StudentInput struct {
	Name             string
	Age              int
	PhoneNumber      string
	Email            string
	EmergencyContact string
	Address          string
	IsActive         *bool
}

func (s *StudentService) Create(input StudentInput) (*models.Student, error) {
	var existing models.Student
	err := s.DB.Where("phone_number = ?", input.PhoneNumber).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateStudent
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	student := models.Student{
		Name:             input.Name,
		Age:              input.Age,
		PhoneNumber:      input.PhoneNumber,
		Email:            input.Email,
		EmergencyContact: input.EmergencyContact,
		Address:          input.Address,
		IsActive:         active,
	}
	if err := s.DB.Create(&student).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateStudent
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return s.GetByID(student.ID)
}

type StudentUpdateInput struct {
	Name             *string
	Age              *int
	PhoneNumber      *string
	Email            *string
	EmergencyContact *string
	Address          *string
	IsActive         *bool
}

func (s *StudentService) Update(id uint, input StudentUpdateInput) (*models.Student, error) {
	var student models.Student
	if err := s.DB.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Age != nil {
		updates["age"] = *input.Age
	}
	if input.PhoneNumber != nil {
		updates["phone_number"] = *input.PhoneNumber
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.EmergencyContact != nil {
		updates["emergency_contact"] = *input.EmergencyContact
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&student).Updates(updates).Error; err != nil {
			if isDuplicateKey(err) {
				return nil, ErrDuplicateStudent
			}
			return nil, err
		}
	}

	return s.GetByID(id)
}

// Release marks a student as departed. The bed, if any, is freed and the
// student's bookings, payments and complaints stay put as history. Both
// writes land in one transaction so the bed never points at a departed
// student.
func (s *StudentService) Release(id uint) error {
	var student models.Student
	if err := s.DB.Preload("AssignedBed").First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if student.AssignedBed != nil {
			if err := tx.Model(&models.Bed{}).
				Where("id = ?", student.AssignedBed.ID).
				Updates(map[string]interface{}{
					"current_student_id": nil,
					"status":             models.BedAvailable,
				}).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Student{}).
			Where("id = ?", id).
			Update("is_active", false).Error
	})
}
