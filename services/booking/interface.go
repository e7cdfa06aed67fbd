package booking

import (
	"context"
	"time"

	bookingRepo "mehfil/database/repository/booking"
	"mehfil/models"

	"go.uber.org/zap"
)

// CallerLevel distinguishes anonymous assistant holds from account bookings.
type CallerLevel string

const (
	// LevelGuest places a catalog hold only. Nothing is persisted or mailed.
	LevelGuest CallerLevel = "guest"
	// LevelMember persists the booking and mails a confirmation.
	LevelMember CallerLevel = "member"
)

// Caller identifies who is booking.
type Caller struct {
	UserID string
	Level  CallerLevel
}

// Request is the single booking contract used by the assistant and the HTTP API.
type Request struct {
	VendorID   string
	EventDate  string
	GuestCount int
	Caller     Caller
}

// Catalog is the slice of the vendor repository the booking writer needs.
type Catalog interface {
	Find(ctx context.Context, id string) (*models.Vendor, error)
	MarkBooked(ctx context.Context, id, date string) error
}

// UserFinder resolves the booking account.
type UserFinder interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// ConfirmationMailer delivers booking confirmation emails.
type ConfirmationMailer interface {
	SendBookingConfirmation(ctx context.Context, to, name string, booking *models.Booking) error
}

// BookingService creates and lists bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, req Request) (*models.BookingConfirmation, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog  Catalog
	Bookings bookingRepo.BookingRepository
	Users    UserFinder
	Mailer   ConfirmationMailer
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
