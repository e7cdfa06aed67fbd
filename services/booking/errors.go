package booking

import (
	"fmt"

	"mehfil/models"
	"mehfil/utils"
)

var (
	ErrMissingFields   = utils.NewValidationError("Missing required booking information")
	ErrInvalidDate     = utils.NewValidationError("Event date must be in YYYY-MM-DD format")
	ErrInvalidGuests   = utils.NewValidationError("Guest count must be greater than zero for per-head vendors")
	ErrUnauthenticated = utils.NewUnauthorizedError("Unauthorized")
	ErrVendorNotFound  = utils.NewNotFoundError("Vendor not found")
	ErrUserNotFound    = utils.NewNotFoundError("User not found")
	ErrDateUnavailable = utils.NewConflictError("This date is no longer available")
)

// DateTakenError names the vendor and date a booking collided on. It unwraps
// to ErrDateUnavailable, so HTTP callers still see the generic conflict.
type DateTakenError struct {
	VendorName string
	Date       string
}

func (e *DateTakenError) Error() string {
	return fmt.Sprintf("%s is already booked on %s", e.VendorName, e.Date)
}

func (e *DateTakenError) Unwrap() error { return ErrDateUnavailable }

func dateTaken(v *models.Vendor, date string) error {
	return &DateTakenError{VendorName: v.Name, Date: date}
}
