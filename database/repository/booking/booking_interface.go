package bookingRepo

import (
	"context"
	"errors"

	"mehfil/models"
)

// ErrDuplicateBooking means the vendor already has a booking on that date.
var ErrDuplicateBooking = errors.New("vendor already booked on this date")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a booking. A second booking for the same vendor and date
	// fails with ErrDuplicateBooking.
	Create(ctx context.Context, booking *models.Booking) error
	// ListByUser returns the user's bookings, newest booking date first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}
