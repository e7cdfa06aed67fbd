package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "mehfil/database/repository/booking"
	vendorRepo "mehfil/database/repository/vendor"
	"mehfil/models"
	"mehfil/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking reserves a vendor on a date. Guests hold the date in the
// catalog only; members also get a persisted booking and a confirmation email.
// The amount is always computed from the catalog price.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req Request) (*models.BookingConfirmation, error) {
	req.VendorID = strings.TrimSpace(req.VendorID)
	if req.VendorID == "" || strings.TrimSpace(req.EventDate) == "" {
		return nil, ErrMissingFields
	}
	date, err := utils.NormalizeDate(req.EventDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if req.GuestCount < 0 {
		return nil, ErrInvalidGuests
	}
	member := req.Caller.Level == LevelMember
	if member && req.Caller.UserID == "" {
		return nil, ErrUnauthenticated
	}

	vendor, err := s.Catalog.Find(ctx, req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor %s: %w", req.VendorID, err)
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	var user *models.User
	if member {
		user, err = s.Users.GetByID(ctx, req.Caller.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user %s: %w", req.Caller.UserID, err)
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
	}
	if vendor.IsPerHead() && req.GuestCount == 0 {
		return nil, ErrInvalidGuests
	}
	if vendor.IsBooked(date) {
		return nil, dateTaken(vendor, date)
	}

	now := s.now()
	record := &models.Booking{
		ID:             uuid.NewString(),
		BookingNumber:  newBookingNumber(now.Year()),
		UserID:         req.Caller.UserID,
		VendorID:       vendor.ID,
		VendorName:     vendor.Name,
		VendorCategory: vendor.Category,
		BookingDate:    date,
		Guests:         req.GuestCount,
		TotalPrice:     vendor.Cost(req.GuestCount),
		Status:         models.BookingStatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if member {
		if err := s.Bookings.Create(ctx, record); err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				return nil, dateTaken(vendor, date)
			}
			return nil, err
		}
	}

	if err := s.Catalog.MarkBooked(ctx, vendor.ID, date); err != nil {
		switch {
		case member && errors.Is(err, vendorRepo.ErrDateTaken):
			// The persisted booking won the unique index; the catalog already shows the date.
			s.logger().Warn("Catalog already held booked date",
				zap.String("vendorId", vendor.ID), zap.String("date", date))
		case errors.Is(err, vendorRepo.ErrDateTaken):
			return nil, dateTaken(vendor, date)
		case errors.Is(err, vendorRepo.ErrVendorNotFound):
			return nil, ErrVendorNotFound
		case member:
			s.logger().Error("Failed to mark catalog date booked",
				zap.String("vendorId", vendor.ID), zap.String("date", date), zap.Error(err))
		default:
			return nil, fmt.Errorf("failed to hold vendor date: %w", err)
		}
	}

	if member && s.Mailer != nil {
		if err := s.Mailer.SendBookingConfirmation(ctx, user.Email, user.Name, record); err != nil {
			s.logger().Error("Failed to send booking confirmation",
				zap.String("bookingId", record.ID), zap.Error(err))
		}
	}

	confirmation := &models.BookingConfirmation{
		Success:        true,
		BookingNumber:  record.BookingNumber,
		VendorID:       vendor.ID,
		VendorName:     vendor.Name,
		VendorCategory: string(vendor.Category),
		EventDate:      date,
		GuestCount:     req.GuestCount,
		TotalAmount:    record.TotalPrice,
		Status:         record.Status,
		Persisted:      member,
	}
	if member {
		confirmation.BookingID = record.ID
		confirmation.Record = record
	}
	confirmation.ConfirmationMessage = confirmationMessage(confirmation)
	return confirmation, nil
}
