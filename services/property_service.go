package services

import (
	"errors"
	"fmt"
	"sort"

	"hostel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

// Read-side projection for the floor map: rooms grouped into floors, beds
// flattened to what the map needs. This shaping is decoupled from the write
// path on purpose.
type BedView struct {
	ID         uint             `json:"id"`
	Number     string           `json:"number"`
	RoomID     uint             `json:"roomId"`
	IsOccupied bool             `json:"isOccupied"`
	Resident   *ResidentSummary `json:"resident,omitempty"`
}

type ResidentSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
}

type RoomView struct {
	ID      uint      `json:"id"`
	Number  string    `json:"number"`
	FloorID string    `json:"floorId"`
	Beds    []BedView `json:"beds"`
}

type FloorView struct {
	ID         string     `json:"id"`
	Number     int        `json:"number"`
	PropertyID uint       `json:"propertyId"`
	Rooms      []RoomView `json:"rooms"`
}

type PropertyView struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	Amenities datatypes.JSON `json:"amenities,omitempty"`
	Floors    []FloorView    `json:"floors"`
}

func buildPropertyView(property models.Property) PropertyView {
	floorRooms := map[int][]RoomView{}
	for _, room := range property.Rooms {
		view := RoomView{
			ID:      room.ID,
			Number:  room.RoomNumber,
			FloorID: fmt.Sprintf("floor-%d", room.FloorNumber),
			Beds:    []BedView{},
		}
		for _, bed := range room.Beds {
			bv := BedView{
				ID:         bed.ID,
				Number:     bed.Label,
				RoomID:     room.ID,
				IsOccupied: bed.Status == models.BedOccupied,
			}
			if bed.CurrentStudent != nil {
				bv.Resident = &ResidentSummary{
					ID:          bed.CurrentStudent.ID,
					Name:        bed.CurrentStudent.Name,
					PhoneNumber: bed.CurrentStudent.PhoneNumber,
					Email:       bed.CurrentStudent.Email,
				}
			}
			view.Beds = append(view.Beds, bv)
		}
		floorRooms[room.FloorNumber] = append(floorRooms[room.FloorNumber], view)
	}

	floorNumbers := make([]int, 0, len(floorRooms))
	for n := range floorRooms {
		floorNumbers = append(floorNumbers, n)
	}
	sort.Ints(floorNumbers)

	floors := make([]FloorView, 0, len(floorNumbers))
	for _, n := range floorNumbers {
		floors = append(floors, FloorView{
			ID:         fmt.Sprintf("floor-%d", n),
			Number:     n,
			PropertyID: property.ID,
			Rooms:      floorRooms[n],
		})
	}

	return PropertyView{
		ID:        property.ID,
		Name:      property.Name,
		Address:   property.Address,
		Amenities: property.Amenities,
		Floors:    floors,
	}
}

func (s *PropertyService) GetAll() ([]PropertyView, error) {
	var properties []models.Property
	err := s.DB.
		Preload("Rooms.Beds.CurrentStudent").
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}

	views := make([]PropertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, buildPropertyView(p))
	}
	return views, nil
}

func (s *PropertyService) GetByID(id uint) (*PropertyView, error) {
	var property models.Property
	err := s.DB.
		Preload("Rooms.Beds.CurrentStudent").
		First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	view := buildPropertyView(property)
	return &view, nil
}

type PropertyInput struct {
	Name        string
	Address     string
	TotalFloors int
	Amenities   datatypes.JSON
}

func (s *PropertyService) Create(input PropertyInput) (*models.Property, error) {
	if input.TotalFloors <= 0 {
		input.TotalFloors = 1
	}
	property := models.Property{
		Name:        input.Name,
		Address:     input.Address,
		TotalFloors: input.TotalFloors,
		Amenities:   input.Amenities,
	}
	if err := s.DB.Create(&property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return &property, nil
}

type PropertyUpdateInput struct {
	Name        *string
	Address     *string
	TotalFloors *int
	Amenities   datatypes.JSON
}

func (s *PropertyService) Update(id uint, input PropertyUpdateInput) (*models.Property, error) {
	var property models.Property
	if err := s.DB.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.TotalFloors != nil {
		updates["total_floors"] = *input.TotalFloors
	}
	if input.Amenities != nil {
		updates["amenities"] = input.Amenities
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&property).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.DB.First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// Delete removes a property along with its rooms and beds, refusing if any
// bed anywhere in the property is occupied.
func (s *PropertyService) Delete(id uint) error {
	var property models.Property
	if err := s.DB.Preload("Rooms.Beds").First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}

	for _, room := range property.Rooms {
		for _, bed := range room.Beds {
			if bed.Status == models.BedOccupied {
				return ErrRoomOccupied
			}
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, room := range property.Rooms {
			if err := tx.Where("room_id = ?", room.ID).Delete(&models.Bed{}).Error; err != nil {
				return err
			}
			if err := tx.Where("room_id = ?", room.ID).Delete(&models.Complaint{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, id).Error
	})
}
