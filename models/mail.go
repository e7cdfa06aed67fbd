package models

// Mail kinds carried by queued mail tasks.
const (
	MailVerification        = "verification"
	MailPasswordReset       = "password_reset"
	MailBookingConfirmation = "booking_confirmation"
)

// MailPayload is the serialized body of a mail task.
type MailPayload struct {
	Kind    string   `json:"kind"`
	To      string   `json:"to"`
	Name    string   `json:"name"`
	Token   string   `json:"token,omitempty"`
	Booking *Booking `json:"booking,omitempty"`
}
