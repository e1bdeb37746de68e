package models

import (
	"time"

	"gorm.io/datatypes"
)

// Complaint categories and statuses.
const (
	CategoryPlumbing   = "PLUMBING"
	CategoryElectrical = "ELECTRICAL"
	CategoryCleaning   = "CLEANING"
	CategoryOther      = "OTHER"

	ComplaintOpen     = "OPEN"
	ComplaintResolved = "RESOLVED"
)

type Complaint struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID    uint  `gorm:"column:room_id;index" json:"roomId"`
	StudentID *uint `gorm:"column:student_id;index" json:"studentId"`

	Category    string `gorm:"size:20" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"size:20;default:OPEN" json:"status"`

	Attachments datatypes.JSON `gorm:"column:attachments" json:"attachments,omitempty"`

	// Set when status flips to RESOLVED, cleared if it is reopened.
	ResolvedAt *time.Time `gorm:"column:resolved_at" json:"resolvedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room    Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
