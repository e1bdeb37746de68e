package models

import (
	"time"
)

// Room types as the frontend sends them.
const (
	RoomTypeAC    = "AC"
	RoomTypeNonAC = "NON_AC"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PropertyID uint `gorm:"column:property_id;uniqueIndex:idx_property_room_number;index" json:"propertyId"`

	// Room number is unique within a property, not globally.
	RoomNumber  string `gorm:"column:room_number;uniqueIndex:idx_property_room_number;size:50" json:"roomNumber"`
	FloorNumber int    `gorm:"column:floor_number;index" json:"floorNumber"`
	Type        string `gorm:"size:20" json:"type"`
	Capacity    int    `gorm:"column:capacity" json:"capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Property   Property    `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Beds       []Bed       `gorm:"foreignKey:RoomID" json:"beds,omitempty"`
	Complaints []Complaint `gorm:"foreignKey:RoomID" json:"complaints,omitempty"`
}
