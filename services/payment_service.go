package services

import (
	"errors"
	"fmt"
	"time"

	"hostel-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

func (s *PaymentService) GetAll(bookingID *uint) ([]models.Payment, error) {
	var payments []models.Payment
	q := s.DB.Preload("Booking.Student").Order("date DESC")
	if bookingID != nil {
		q = q.Where("booking_id = ?", *bookingID)
	}
	err := q.Find(&payments).Error
	return payments, err
}

func (s *PaymentService) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.Preload("Booking.Student").First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// Create records the payment for a booking. A booking takes exactly one
// payment and the amount must match the booking total to the paisa.
func (s *PaymentService) Create(bookingID uint, amount float64, method string, transactionRef *string) (*models.Payment, error) {
	var booking models.Booking
	if err := s.DB.Preload("Payment").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.Payment != nil {
		return nil, ErrPaymentExists
	}

	if amount != booking.TotalAmount {
		return nil, &AmountMismatchError{Expected: booking.TotalAmount, Received: amount}
	}

	payment := models.Payment{
		BookingID:      bookingID,
		Amount:         amount,
		Method:         method,
		Date:           time.Now(),
		TransactionRef: transactionRef,
		ReceiptNo:      uuid.NewString(),
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		if isDuplicateKey(err) {
			// Raced with another payment for the same booking.
			return nil, ErrPaymentExists
		}
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return s.GetByID(payment.ID)
}

type PaymentUpdateInput struct {
	Method         *string
	TransactionRef *string
}

// Update only touches method and transaction reference; the amount is fixed
// at creation time by the booking total.
func (s *PaymentService) Update(id uint, input PaymentUpdateInput) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Method != nil {
		updates["method"] = *input.Method
	}
	if input.TransactionRef != nil {
		updates["transaction_ref"] = *input.TransactionRef
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&payment).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

func (s *PaymentService) Delete(id uint) error {
	res := s.DB.Delete(&models.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
