package services

import (
	"errors"
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomFilter struct {
	PropertyID  *uint
	FloorNumber *int
}

func (s *RoomService) GetAll(filter RoomFilter) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.
		Preload("Property").
		Preload("Beds.CurrentStudent").
		Preload("Complaints", "status = ?", models.ComplaintOpen).
		Order("floor_number ASC, room_number ASC")
	if filter.PropertyID != nil {
		q = q.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.FloorNumber != nil {
		q = q.Where("floor_number = ?", *filter.FloorNumber)
	}
	err := q.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.
		Preload("Property").
		Preload("Beds.CurrentStudent").
		Preload("Complaints").
		First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

type RoomInput struct {
	RoomNumber  string
	FloorNumber int
	Type        string
	Capacity    int
	PropertyID  uint
}

func (s *RoomService) Create(input RoomInput) (*models.Room, error) {
	var property models.Property
	if err := s.DB.First(&property, input.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	room := models.Room{
		PropertyID:  input.PropertyID,
		RoomNumber:  input.RoomNumber,
		FloorNumber: input.FloorNumber,
		Type:        input.Type,
		Capacity:    input.Capacity,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateRoom
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return s.GetByID(room.ID)
}

type RoomUpdateInput struct {
	RoomNumber  *string
	FloorNumber *int
	Type        *string
	Capacity    *int
	PropertyID  *uint
}

func (s *RoomService) Update(id uint, input RoomUpdateInput) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.RoomNumber != nil {
		updates["room_number"] = *input.RoomNumber
	}
	if input.FloorNumber != nil {
		updates["floor_number"] = *input.FloorNumber
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Capacity != nil {
		updates["capacity"] = *input.Capacity
	}
	if input.PropertyID != nil {
		updates["property_id"] = *input.PropertyID
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
			if isDuplicateKey(err) {
				return nil, ErrDuplicateRoom
			}
			return nil, err
		}
	}

	return s.GetByID(id)
}

// Delete removes a room and its beds unless any bed is occupied.
func (s *RoomService) Delete(id uint) error {
	var room models.Room
	if err := s.DB.Preload("Beds", "status = ?", models.BedOccupied).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	if len(room.Beds) > 0 {
		return ErrRoomOccupied
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.Bed{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.Complaint{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	})
}
