package models

import (
	"time"
)

// Bed status values. MAINTENANCE is only ever set by an explicit
// administrative update, never by onboarding or assignment.
const (
	BedAvailable   = "AVAILABLE"
	BedOccupied    = "OCCUPIED"
	BedMaintenance = "MAINTENANCE"
)

type Bed struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID uint `gorm:"column:room_id;uniqueIndex:idx_room_bed_label;index" json:"roomId"`

	// Label is unique within a room ("B1", "B2", ...).
	Label  string `gorm:"uniqueIndex:idx_room_bed_label;size:50" json:"label"`
	Status string `gorm:"size:20;default:AVAILABLE" json:"status"`

	// The unique index keeps one student from ever holding two beds at
	// once; NULL rows (free beds) are exempt.
	CurrentStudentID *uint `gorm:"column:current_student_id;uniqueIndex" json:"currentStudentId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room           Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	CurrentStudent *Student `gorm:"foreignKey:CurrentStudentID" json:"currentStudent,omitempty"`
}
