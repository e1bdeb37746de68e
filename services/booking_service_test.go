package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStudent(t *testing.T, db *gorm.DB, phone string) models.Student {
	t.Helper()
	student := models.Student{
		Name:             "Asha",
		Age:              21,
		PhoneNumber:      phone,
		EmergencyContact: "9000000099",
		IsActive:         true,
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func TestCreateBookingOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	student := seedStudent(t, db, "9000000001")

	_, err := svc.Create(student.ID, models.FrequencyMonthly, date("2024-01-01"), date("2024-02-01"), 8000)
	require.NoError(t, err)

	// Inside the existing interval.
	_, err = svc.Create(student.ID, models.FrequencyException, date("2024-01-15"), date("2024-01-20"), 2000)
	assert.ErrorIs(t, err, ErrOverlappingBooking)

	// Straddling the start.
	_, err = svc.Create(student.ID, models.FrequencyMonthly, date("2023-12-15"), date("2024-01-02"), 8000)
	assert.ErrorIs(t, err, ErrOverlappingBooking)

	// Back-to-back is allowed: [a,b) then [b,c).
	_, err = svc.Create(student.ID, models.FrequencyMonthly, date("2024-02-01"), date("2024-03-01"), 8000)
	assert.NoError(t, err)
}

func TestCreateBookingValidations(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	student := seedStudent(t, db, "9000000001")

	_, err := svc.Create(student.ID, models.FrequencyMonthly, date("2024-02-01"), date("2024-01-01"), 8000)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.Create(99999, models.FrequencyMonthly, date("2024-01-01"), date("2024-02-01"), 8000)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestBookingsPairwiseDisjoint(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	student := seedStudent(t, db, "9000000001")

	ranges := [][2]string{
		{"2024-01-01", "2024-02-01"},
		{"2024-02-01", "2024-03-01"},
		{"2024-06-01", "2025-06-01"},
	}
	for _, r := range ranges {
		_, err := svc.Create(student.ID, models.FrequencyMonthly, date(r[0]), date(r[1]), 8000)
		require.NoError(t, err)
	}

	bookings, err := svc.GetAll(&student.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	for i := range bookings {
		for j := i + 1; j < len(bookings); j++ {
			a, b := bookings[i], bookings[j]
			overlap := a.StartDate.Before(b.EndDate) && b.StartDate.Before(a.EndDate)
			assert.False(t, overlap, "bookings %d and %d overlap", a.ID, b.ID)
		}
	}
}

func TestUpdateBookingDateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	student := seedStudent(t, db, "9000000001")

	booking, err := svc.Create(student.ID, models.FrequencyMonthly, date("2024-01-01"), date("2024-02-01"), 8000)
	require.NoError(t, err)

	start := date("2024-05-01")
	end := date("2024-04-01")
	_, err = svc.Update(booking.ID, BookingUpdateInput{StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	amount := 9000.0
	updated, err := svc.Update(booking.ID, BookingUpdateInput{TotalAmount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 9000.0, updated.TotalAmount)
}

func TestDeleteBookingRemovesPaymentFirst(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	payments := NewPaymentService(db)
	student := seedStudent(t, db, "9000000001")

	booking, err := bookings.Create(student.ID, models.FrequencyMonthly, date("2024-01-01"), date("2024-02-01"), 8000)
	require.NoError(t, err)
	_, err = payments.Create(booking.ID, 8000, models.MethodQRScan, nil)
	require.NoError(t, err)

	require.NoError(t, bookings.Delete(booking.ID))

	var bookingCount, paymentCount int64
	db.Model(&models.Booking{}).Count(&bookingCount)
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Zero(t, bookingCount)
	assert.Zero(t, paymentCount)

	assert.ErrorIs(t, bookings.Delete(booking.ID), ErrBookingNotFound)
}
