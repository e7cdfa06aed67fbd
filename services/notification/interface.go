package notification

import (
	"context"

	"mehfil/models"
)

// Mailer sends the account and booking emails.
type Mailer interface {
	SendVerification(ctx context.Context, to, name, token string) error
	SendPasswordReset(ctx context.Context, to, name, token string) error
	SendBookingConfirmation(ctx context.Context, to, name string, booking *models.Booking) error
}

// Deliverer renders and sends one queued mail payload.
type Deliverer interface {
	Deliver(ctx context.Context, payload models.MailPayload) error
}
