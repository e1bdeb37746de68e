package models

import (
	"time"

	"gorm.io/datatypes"
)

type Property struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Address     string         `gorm:"type:text" json:"address"`
	TotalFloors int            `gorm:"column:total_floors;default:1" json:"totalFloors"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Rooms []Room `gorm:"foreignKey:PropertyID" json:"rooms,omitempty"`
}
