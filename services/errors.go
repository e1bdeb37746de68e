package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Business-rule violations surfaced by the ledger. Controllers map each of
// these to a distinct HTTP status; anything else is a storage failure.
var (
	ErrInvalidDateRange    = errors.New("startDate must be before endDate")
	ErrBedNotFound         = errors.New("bed not found")
	ErrBedAlreadyOccupied  = errors.New("bed is already occupied")
	ErrBedOccupied         = errors.New("cannot delete occupied bed")
	ErrBedAssigned         = errors.New("bed is already assigned to another student")
	ErrDuplicateStudent    = errors.New("student with this phone number already exists")
	ErrStudentNotFound     = errors.New("student not found")
	ErrOverlappingBooking  = errors.New("student already has a booking for the selected dates")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentExists       = errors.New("payment already exists for this booking")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomOccupied        = errors.New("cannot delete room with occupied beds")
	ErrRoomCapacityReached = errors.New("room capacity reached")
	ErrDuplicateRoom       = errors.New("room number already exists in this property")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrComplaintNotFound   = errors.New("complaint not found")
)

// AmountMismatchError reports a payment that does not match its booking
// total. Both values ride along so the response body can show them.
type AmountMismatchError struct {
	Expected float64
	Received float64
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("payment amount does not match booking total: expected %.2f, received %.2f",
		e.Expected, e.Received)
}

// isDuplicateKey reports whether err is a unique-constraint violation. MySQL
// raises errno 1062; the sqlite driver used in tests reports it as text.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
