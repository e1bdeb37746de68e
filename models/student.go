package models

import (
	"time"
)

type Student struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:255;not null" json:"name"`
	Age  int    `json:"age"`

	// Phone number is the natural dedup key for residents.
	PhoneNumber      string `gorm:"column:phone_number;uniqueIndex;size:20" json:"phoneNumber"`
	Email            string `gorm:"size:150" json:"email,omitempty"`
	EmergencyContact string `gorm:"column:emergency_contact;size:20" json:"emergencyContact"`
	Address          string `gorm:"type:text" json:"address,omitempty"`

	// false means departed / soft-deleted; rows are kept for history.
	IsActive bool `gorm:"column:is_active;default:true" json:"isActive"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AssignedBed *Bed        `gorm:"foreignKey:CurrentStudentID" json:"assignedBed,omitempty"`
	Bookings    []Booking   `gorm:"foreignKey:StudentID" json:"bookings,omitempty"`
	Complaints  []Complaint `gorm:"foreignKey:StudentID" json:"complaints,omitempty"`
}
