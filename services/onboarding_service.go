package services

import (
	"fmt"
	"time"

	"hostel-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OnboardingService runs the move-in sequence: create the student, assign
// the bed, open the first booking and record its payment, all in one
// database transaction.
type OnboardingService struct {
	DB *gorm.DB
}

func NewOnboardingService(db *gorm.DB) *OnboardingService {
	return &OnboardingService{DB: db}
}

type OnboardingInput struct {
	Name             string
	Age              int
	PhoneNumber      string
	Email            string
	EmergencyContact string
	Address          string

	BedID uint

	Frequency   string
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount float64

	PaymentMethod  string
	TransactionRef *string
}

type OnboardingResult struct {
	Student *models.Student `json:"student"`
	Booking *models.Booking `json:"booking"`
	Payment *models.Payment `json:"payment"`
}

// Onboard checks every precondition up front, then executes the four writes
// as a single unit. On any error nothing is left behind: GORM rolls the
// transaction back and readers never see a half-onboarded student.
func (s *OnboardingService) Onboard(input OnboardingInput) (*OnboardingResult, error) {
	if !input.StartDate.Before(input.EndDate) {
		return nil, ErrInvalidDateRange
	}

	var bed models.Bed
	if err := s.DB.Preload("Room.Property").First(&bed, input.BedID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrBedNotFound
		}
		return nil, fmt.Errorf("failed to load bed: %w", err)
	}
	if bed.Status == models.BedOccupied {
		return nil, ErrBedAlreadyOccupied
	}

	var existing models.Student
	err := s.DB.Where("phone_number = ?", input.PhoneNumber).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateStudent
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check phone number: %w", err)
	}

	result := &OnboardingResult{}
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// 1. Create the student.
		student := models.Student{
			Name:             input.Name,
			Age:              input.Age,
			PhoneNumber:      input.PhoneNumber,
			Email:            input.Email,
			EmergencyContact: input.EmergencyContact,
			Address:          input.Address,
			IsActive:         true,
		}
		if err := tx.Create(&student).Error; err != nil {
			if isDuplicateKey(err) {
				// Lost a race with a concurrent onboarding of the same phone.
				return ErrDuplicateStudent
			}
			return fmt.Errorf("failed to create student: %w", err)
		}

		// 2. Assign the bed. The status guard in the WHERE clause is the
		// commit-time re-validation: if another transaction occupied the bed
		// after our pre-check, zero rows match and the whole unit rolls back.
		res := tx.Model(&models.Bed{}).
			Where("id = ? AND status <> ?", input.BedID, models.BedOccupied).
			Updates(map[string]interface{}{
				"current_student_id": student.ID,
				"status":             models.BedOccupied,
			})
		if res.Error != nil {
			if isDuplicateKey(res.Error) {
				return ErrBedAssigned
			}
			return fmt.Errorf("failed to assign bed: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrBedAlreadyOccupied
		}

		// 3. Create the booking.
		booking := models.Booking{
			StudentID:     student.ID,
			ReferenceCode: uuid.NewString(),
			Frequency:     input.Frequency,
			StartDate:     input.StartDate,
			EndDate:       input.EndDate,
			TotalAmount:   input.TotalAmount,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		// 4. Create the payment.
		payment := models.Payment{
			BookingID:      booking.ID,
			Amount:         input.TotalAmount,
			Method:         input.PaymentMethod,
			Date:           time.Now(),
			TransactionRef: input.TransactionRef,
			ReceiptNo:      uuid.NewString(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		// 5. Re-read the joined aggregate for the response.
		var complete models.Student
		if err := tx.
			Preload("AssignedBed.Room.Property").
			Preload("Bookings.Payment").
			First(&complete, student.ID).Error; err != nil {
			return fmt.Errorf("failed to reload student: %w", err)
		}

		result.Student = &complete
		result.Booking = &booking
		result.Payment = &payment
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return result, nil
}
