package services

import (
	"errors"
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type BedService struct {
	DB *gorm.DB
}

func NewBedService(db *gorm.DB) *BedService {
	return &BedService{DB: db}
}

func (s *BedService) GetAll(roomID *uint) ([]models.Bed, error) {
	var beds []models.Bed
	q := s.DB.
		Joins("JOIN rooms ON rooms.id = beds.room_id").
		Preload("Room.Property").
		Preload("CurrentStudent").
		Order("rooms.floor_number ASC, rooms.room_number ASC, beds.label ASC")
	if roomID != nil {
		q = q.Where("beds.room_id = ?", *roomID)
	}
	err := q.Find(&beds).Error
	return beds, err
}

func (s *BedService) GetByID(id uint) (*models.Bed, error) {
	var bed models.Bed
	err := s.DB.Preload("Room.Property").Preload("CurrentStudent").First(&bed, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBedNotFound
		}
		return nil, err
	}
	return &bed, nil
}

// Create adds a bed to a room, refusing once the room is at capacity.
func (s *BedService) Create(roomID uint, label, status string) (*models.Bed, error) {
	var room models.Room
	if err := s.DB.Preload("Beds").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if len(room.Beds) >= room.Capacity {
		return nil, ErrRoomCapacityReached
	}

	if status == "" {
		status = models.BedAvailable
	}

	bed := models.Bed{
		RoomID: roomID,
		Label:  label,
		Status: status,
	}
	if err := s.DB.Create(&bed).Error; err != nil {
		return nil, fmt.Errorf("failed to create bed: %w", err)
	}

	return s.GetByID(bed.ID)
}

type BedUpdateInput struct {
	Label  *string
	Status *string

	// Set (pointer non-nil) means the assignment is being changed; the inner
	// pointer being nil means "unassign".
	CurrentStudentID **uint
}

// Update handles the manual reassignment path. Assigning a student flips the
// bed to OCCUPIED; unassigning flips it back to AVAILABLE. This path
// deliberately creates no booking or payment; it is the administrative
// override the floor map uses for corrections.
func (s *BedService) Update(id uint, input BedUpdateInput) (*models.Bed, error) {
	updates := map[string]interface{}{}
	if input.Label != nil {
		updates["label"] = *input.Label
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.CurrentStudentID != nil {
		updates["current_student_id"] = *input.CurrentStudentID
		if *input.CurrentStudentID != nil {
			updates["status"] = models.BedOccupied
		} else {
			updates["status"] = models.BedAvailable
		}
	}

	res := s.DB.Model(&models.Bed{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return nil, ErrBedAssigned
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing bed from a no-op update.
		var count int64
		s.DB.Model(&models.Bed{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return nil, ErrBedNotFound
		}
	}

	return s.GetByID(id)
}

// Delete removes a bed unless it is currently occupied.
func (s *BedService) Delete(id uint) error {
	var bed models.Bed
	if err := s.DB.First(&bed, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBedNotFound
		}
		return err
	}

	if bed.Status == models.BedOccupied {
		return ErrBedOccupied
	}

	return s.DB.Delete(&models.Bed{}, id).Error
}
