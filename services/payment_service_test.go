package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentAmountMismatch(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	payments := NewPaymentService(db)
	student := seedStudent(t, db, "9000000001")

	booking, err := bookings.Create(student.ID, models.FrequencyMonthly, date("2024-01-01"), date("2024-02-01"), 8000)
	require.NoError(t, err)

	_, err = payments.Create(booking.ID, 7500, models.MethodUPIRequest, nil)
	var mismatch *AmountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 8000.0, mismatch.Expected)
	assert.Equal(t, 7500.0, mismatch.Received)

	// Nothing was written.
	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreatePaymentOnePerBooking(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	payments := NewPaymentService(db)
	student := seedStudent(t, db, "9000000001")

	booking, err := bookings.Create(student.ID, models.FrequencyMonthly, date("2024-01-01"), date("2024-02-01"), 8000)
	require.NoError(t, err)

	ref := "TXN-123"
	payment, err := payments.Create(booking.ID, 8000, models.MethodUPIRequest, &ref)
	require.NoError(t, err)
	assert.Equal(t, booking.TotalAmount, payment.Amount)
	assert.NotEmpty(t, payment.ReceiptNo)
	require.NotNil(t, payment.TransactionRef)
	assert.Equal(t, "TXN-123", *payment.TransactionRef)

	_, err = payments.Create(booking.ID, 8000, models.MethodCashOffline, nil)
	assert.ErrorIs(t, err, ErrPaymentExists)
}

func TestCreatePaymentBookingNotFound(t *testing.T) {
	db := newTestDB(t)
	payments := NewPaymentService(db)

	_, err := payments.Create(4242, 8000, models.MethodCashOffline, nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdatePaymentMethodOnly(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	payments := NewPaymentService(db)
	student := seedStudent(t, db, "9000000001")

	booking, err := bookings.Create(student.ID, models.FrequencyMonthly, date("2024-01-01"), date("2024-02-01"), 8000)
	require.NoError(t, err)
	payment, err := payments.Create(booking.ID, 8000, models.MethodCashOffline, nil)
	require.NoError(t, err)

	method := models.MethodQRScan
	ref := "QR-778"
	updated, err := payments.Update(payment.ID, PaymentUpdateInput{Method: &method, TransactionRef: &ref})
	require.NoError(t, err)
	assert.Equal(t, models.MethodQRScan, updated.Method)
	require.NotNil(t, updated.TransactionRef)
	assert.Equal(t, "QR-778", *updated.TransactionRef)
	assert.Equal(t, 8000.0, updated.Amount)

	_, err = payments.Update(999, PaymentUpdateInput{Method: &method})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
