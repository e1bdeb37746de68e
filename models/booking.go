package models

import (
	"time"
)

// Billing frequencies.
const (
	FrequencyMonthly   = "MONTHLY"
	FrequencyYearly    = "YEARLY"
	FrequencyException = "EXCEPTION"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudentID     uint   `gorm:"column:student_id;index" json:"studentId"`
	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`

	Frequency string `gorm:"size:20" json:"frequency"`

	// [StartDate, EndDate) half-open: a booking ending on a date does not
	// collide with one starting the same date.
	StartDate   time.Time `gorm:"column:start_date;index" json:"startDate"`
	EndDate     time.Time `gorm:"column:end_date" json:"endDate"`
	TotalAmount float64   `gorm:"column:total_amount" json:"totalAmount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Student Student  `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Payment *Payment `gorm:"foreignKey:BookingID" json:"payment,omitempty"`
}
