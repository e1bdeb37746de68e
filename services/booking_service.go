package services

import (
	"errors"
	"fmt"
	"time"

	"hostel-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func (s *BookingService) GetAll(studentID *uint) ([]models.Booking, error) {
	var bookings []models.Booking
	q := s.DB.Preload("Student").Preload("Payment").Order("start_date DESC")
	if studentID != nil {
		q = q.Where("student_id = ?", *studentID)
	}
	err := q.Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Student").Preload("Payment").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// hasOverlap reports whether the student already has a booking whose
// [start,end) interval intersects the given one. Two intervals [s1,e1) and
// [s2,e2) overlap iff s1 < e2 and s2 < e1, so back-to-back bookings that
// share a boundary date are fine.
func (s *BookingService) hasOverlap(tx *gorm.DB, studentID uint, start, end time.Time, excludeID uint) (bool, error) {
	var count int64
	q := tx.Model(&models.Booking{}).
		Where("student_id = ? AND start_date < ? AND end_date > ?", studentID, end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *BookingService) Create(studentID uint, frequency string, start, end time.Time, totalAmount float64) (*models.Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	var student models.Student
	if err := s.DB.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	overlap, err := s.hasOverlap(s.DB, studentID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrOverlappingBooking
	}

	booking := models.Booking{
		StudentID:     studentID,
		ReferenceCode: uuid.NewString(),
		Frequency:     frequency,
		StartDate:     start,
		EndDate:       end,
		TotalAmount:   totalAmount,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return s.GetByID(booking.ID)
}

type BookingUpdateInput struct {
	Frequency   *string
	StartDate   *time.Time
	EndDate     *time.Time
	TotalAmount *float64
}

func (s *BookingService) Update(id uint, input BookingUpdateInput) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Frequency != nil {
		updates["frequency"] = *input.Frequency
	}
	if input.TotalAmount != nil {
		updates["total_amount"] = *input.TotalAmount
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		updates["end_date"] = *input.EndDate
	}

	if input.StartDate != nil && input.EndDate != nil {
		if !input.StartDate.Before(*input.EndDate) {
			return nil, ErrInvalidDateRange
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

// Delete removes a booking; the dependent payment, if any, goes first so the
// unique FK never dangles. Both deletes share one transaction.
func (s *BookingService) Delete(id uint) error {
	var booking models.Booking
	if err := s.DB.Preload("Payment").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if booking.Payment != nil {
			if err := tx.Where("booking_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Booking{}, id).Error
	})
}
