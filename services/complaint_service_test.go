package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveComplaintSetsResolvedAt(t *testing.T) {
	db := newTestDB(t)
	room, _ := seedRoomWithBeds(t, db, 2, 1)
	complaints := NewComplaintService(db)

	complaint, err := complaints.Create(ComplaintInput{
		Category:    models.CategoryPlumbing,
		Description: "Leaking tap in the bathroom",
		RoomID:      room.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintOpen, complaint.Status)
	assert.Nil(t, complaint.ResolvedAt)

	status := models.ComplaintResolved
	complaint, err = complaints.Update(complaint.ID, ComplaintUpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, complaint.Status)
	require.NotNil(t, complaint.ResolvedAt)

	// Reopening clears the timestamp again.
	reopen := models.ComplaintOpen
	complaint, err = complaints.Update(complaint.ID, ComplaintUpdateInput{Status: &reopen})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintOpen, complaint.Status)
	assert.Nil(t, complaint.ResolvedAt)
}

func TestCreateComplaintValidatesReferences(t *testing.T) {
	db := newTestDB(t)
	room, _ := seedRoomWithBeds(t, db, 2, 1)
	complaints := NewComplaintService(db)

	_, err := complaints.Create(ComplaintInput{
		Category:    models.CategoryElectrical,
		Description: "Fan not working",
		RoomID:      999,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	missing := uint(999)
	_, err = complaints.Create(ComplaintInput{
		Category:    models.CategoryElectrical,
		Description: "Fan not working",
		RoomID:      room.ID,
		StudentID:   &missing,
	})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestComplaintStatusFilter(t *testing.T) {
	db := newTestDB(t)
	room, _ := seedRoomWithBeds(t, db, 2, 1)
	complaints := NewComplaintService(db)

	first, err := complaints.Create(ComplaintInput{
		Category:    models.CategoryCleaning,
		Description: "Corridor not cleaned",
		RoomID:      room.ID,
	})
	require.NoError(t, err)
	_, err = complaints.Create(ComplaintInput{
		Category:    models.CategoryOther,
		Description: "Noise at night",
		RoomID:      room.ID,
	})
	require.NoError(t, err)

	status := models.ComplaintResolved
	_, err = complaints.Update(first.ID, ComplaintUpdateInput{Status: &status})
	require.NoError(t, err)

	open := models.ComplaintOpen
	got, err := complaints.GetAll(ComplaintFilter{Status: &open})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Noise at night", got[0].Description)
}

func TestDeleteComplaintNotFound(t *testing.T) {
	db := newTestDB(t)
	complaints := NewComplaintService(db)

	assert.ErrorIs(t, complaints.Delete(424242), ErrComplaintNotFound)
}
