package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

// optionalUint distinguishes a JSON field that was omitted from one that
// was explicitly null. Present is true whenever the key appeared at all.
type optionalUint struct {
	Present bool
	Value   *uint
}

func (o *optionalUint) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// parseID reads a numeric :id path param; responds 400 itself on garbage.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func parseUintQuery(c *gin.Context, key string) (*uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return nil, false
	}
	u := uint(v)
	return &u, true
}

// parseDate accepts both full RFC3339 timestamps and bare dates, which is
// what the frontend date pickers send.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// respondServiceError maps the ledger's named errors onto HTTP statuses.
// Anything unrecognized is a storage failure: logged, reported as 500.
func respondServiceError(c *gin.Context, err error) {
	var mismatch *services.AmountMismatchError
	if errors.As(err, &mismatch) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Payment amount does not match booking total",
			"expected": mismatch.Expected,
			"received": mismatch.Received,
		})
		return
	}

	status := 0
	switch {
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrRoomCapacityReached),
		errors.Is(err, services.ErrRoomOccupied),
		errors.Is(err, services.ErrBedOccupied):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrBedNotFound),
		errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrPropertyNotFound),
		errors.Is(err, services.ErrComplaintNotFound),
		errors.Is(err, services.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrBedAlreadyOccupied),
		errors.Is(err, services.ErrBedAssigned),
		errors.Is(err, services.ErrDuplicateStudent),
		errors.Is(err, services.ErrOverlappingBooking),
		errors.Is(err, services.ErrPaymentExists),
		errors.Is(err, services.ErrDuplicateRoom),
		errors.Is(err, services.ErrDuplicateUsername):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	if status != 0 {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	log.Printf("❌ storage error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
