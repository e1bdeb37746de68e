package models

import (
	"time"
)

// Payment methods.
const (
	MethodUPIRequest  = "UPI_REQUEST"
	MethodQRScan      = "QR_SCAN"
	MethodCashOffline = "CASH_OFFLINE"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One payment per booking, enforced at the schema level.
	BookingID uint `gorm:"column:booking_id;uniqueIndex" json:"bookingId"`

	Amount         float64   `json:"amount"`
	Method         string    `gorm:"size:20" json:"method"`
	Date           time.Time `json:"date"`
	TransactionRef *string   `gorm:"column:transaction_ref;size:128" json:"transactionRef"`
	ReceiptNo      string    `gorm:"column:receipt_no;size:64" json:"receiptNo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}
