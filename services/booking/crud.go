package booking

import (
	"context"
	"fmt"

	"mehfil/models"
)

// ListBookings returns the user's bookings, newest event date first.
func (s *DefaultBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	bookings, err := s.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
