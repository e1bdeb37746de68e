package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onboardingInput(bedID uint) OnboardingInput {
	return OnboardingInput{
		Name:             "Asha",
		Age:              21,
		PhoneNumber:      "9000000001",
		EmergencyContact: "9000000099",
		BedID:            bedID,
		Frequency:        models.FrequencyMonthly,
		StartDate:        date("2024-01-01"),
		EndDate:          date("2024-02-01"),
		TotalAmount:      8000,
		PaymentMethod:    models.MethodCashOffline,
	}
}

func TestOnboardSuccess(t *testing.T) {
	db := newTestDB(t)
	_, beds := seedRoomWithBeds(t, db, 3, 1)
	svc := NewOnboardingService(db)

	result, err := svc.Onboard(onboardingInput(beds[0].ID))
	require.NoError(t, err)
	require.NotNil(t, result.Student)
	require.NotNil(t, result.Booking)
	require.NotNil(t, result.Payment)

	// Bed flipped to OCCUPIED and points at the new student.
	var bed models.Bed
	require.NoError(t, db.First(&bed, beds[0].ID).Error)
	assert.Equal(t, models.BedOccupied, bed.Status)
	require.NotNil(t, bed.CurrentStudentID)
	assert.Equal(t, result.Student.ID, *bed.CurrentStudentID)

	// Exactly one booking with the supplied dates and amount.
	var bookings []models.Booking
	require.NoError(t, db.Where("student_id = ?", result.Student.ID).Find(&bookings).Error)
	require.Len(t, bookings, 1)
	assert.Equal(t, 8000.0, bookings[0].TotalAmount)
	assert.True(t, bookings[0].StartDate.Equal(date("2024-01-01")))
	assert.NotEmpty(t, bookings[0].ReferenceCode)

	// Exactly one payment matching the booking total.
	var payments []models.Payment
	require.NoError(t, db.Where("booking_id = ?", bookings[0].ID).Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, bookings[0].TotalAmount, payments[0].Amount)
	assert.Equal(t, models.MethodCashOffline, payments[0].Method)
	assert.False(t, payments[0].Date.IsZero())

	// The response aggregate carries the joined bed -> room -> property.
	require.NotNil(t, result.Student.AssignedBed)
	assert.Equal(t, "101", result.Student.AssignedBed.Room.RoomNumber)
	assert.Equal(t, "Sunrise PG", result.Student.AssignedBed.Room.Property.Name)
	require.Len(t, result.Student.Bookings, 1)
	require.NotNil(t, result.Student.Bookings[0].Payment)
}

func TestOnboardBedAlreadyOccupied(t *testing.T) {
	db := newTestDB(t)
	_, beds := seedRoomWithBeds(t, db, 3, 1)
	svc := NewOnboardingService(db)

	_, err := svc.Onboard(onboardingInput(beds[0].ID))
	require.NoError(t, err)

	second := onboardingInput(beds[0].ID)
	second.Name = "Ravi"
	second.PhoneNumber = "9000000002"
	_, err = svc.Onboard(second)
	assert.ErrorIs(t, err, ErrBedAlreadyOccupied)

	// Full rollback: no trace of the losing attempt.
	var studentCount, bookingCount, paymentCount int64
	db.Model(&models.Student{}).Count(&studentCount)
	db.Model(&models.Booking{}).Count(&bookingCount)
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Equal(t, int64(1), studentCount)
	assert.Equal(t, int64(1), bookingCount)
	assert.Equal(t, int64(1), paymentCount)
}

func TestOnboardCommitTimeGuard(t *testing.T) {
	db := newTestDB(t)
	_, beds := seedRoomWithBeds(t, db, 3, 1)
	svc := NewOnboardingService(db)

	// Simulate losing the race after the pre-check: the conditional UPDATE
	// matches zero rows once the bed is occupied, regardless of what the
	// pre-check saw.
	res := db.Model(&models.Bed{}).
		Where("id = ? AND status <> ?", beds[0].ID, models.BedOccupied).
		Update("status", models.BedOccupied)
	require.NoError(t, res.Error)
	require.EqualValues(t, 1, res.RowsAffected)

	res = db.Model(&models.Bed{}).
		Where("id = ? AND status <> ?", beds[0].ID, models.BedOccupied).
		Update("status", models.BedOccupied)
	require.NoError(t, res.Error)
	assert.EqualValues(t, 0, res.RowsAffected)

	_, err := svc.Onboard(onboardingInput(beds[0].ID))
	assert.ErrorIs(t, err, ErrBedAlreadyOccupied)
}

func TestOnboardInvalidDateRange(t *testing.T) {
	db := newTestDB(t)
	_, beds := seedRoomWithBeds(t, db, 3, 1)
	svc := NewOnboardingService(db)

	input := onboardingInput(beds[0].ID)
	input.StartDate = date("2024-02-01")
	input.EndDate = date("2024-01-01")
	_, err := svc.Onboard(input)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Equal dates fail too; the interval is half-open and must be non-empty.
	input.EndDate = input.StartDate
	_, err = svc.Onboard(input)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestOnboardBedNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewOnboardingService(db)

	_, err := svc.Onboard(onboardingInput(12345))
	assert.ErrorIs(t, err, ErrBedNotFound)
}

func TestOnboardDuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	_, beds := seedRoomWithBeds(t, db, 3, 2)
	svc := NewOnboardingService(db)

	_, err := svc.Onboard(onboardingInput(beds[0].ID))
	require.NoError(t, err)

	// Same phone, different bed: rejected, second bed untouched.
	dup := onboardingInput(beds[1].ID)
	dup.Name = "Someone Else"
	_, err = svc.Onboard(dup)
	assert.ErrorIs(t, err, ErrDuplicateStudent)

	var bed models.Bed
	require.NoError(t, db.First(&bed, beds[1].ID).Error)
	assert.Equal(t, models.BedAvailable, bed.Status)
	assert.Nil(t, bed.CurrentStudentID)
}

func TestOnboardAfterRelease(t *testing.T) {
	db := newTestDB(t)
	_, beds := seedRoomWithBeds(t, db, 3, 1)
	onboarding := NewOnboardingService(db)
	students := NewStudentService(db)

	first, err := onboarding.Onboard(onboardingInput(beds[0].ID))
	require.NoError(t, err)

	require.NoError(t, students.Release(first.Student.ID))

	// The freed bed accepts a new resident.
	next := onboardingInput(beds[0].ID)
	next.Name = "Ravi"
	next.PhoneNumber = "9000000002"
	next.StartDate = date("2024-03-01")
	next.EndDate = date("2024-04-01")
	result, err := onboarding.Onboard(next)
	require.NoError(t, err)

	var bed models.Bed
	require.NoError(t, db.First(&bed, beds[0].ID).Error)
	assert.Equal(t, models.BedOccupied, bed.Status)
	require.NotNil(t, bed.CurrentStudentID)
	assert.Equal(t, result.Student.ID, *bed.CurrentStudentID)
}
