package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// Booking is a persisted reservation of one vendor on one date.
type Booking struct {
	ID             string         `bson:"id" json:"id"`
	BookingNumber  string         `bson:"bookingNumber" json:"bookingNumber"`
	UserID         string         `bson:"userId" json:"userId"`
	VendorID       string         `bson:"vendorId" json:"vendorId"`
	VendorName     string         `bson:"vendorName" json:"vendorName"`
	VendorCategory VendorCategory `bson:"vendorCategory" json:"vendorCategory"`
	BookingDate    string         `bson:"bookingDate" json:"bookingDate"`
	Guests         int            `bson:"guests,omitempty" json:"guests,omitempty"`
	TotalPrice     int64          `bson:"totalPrice" json:"totalPrice"`
	Status         string         `bson:"status" json:"status"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// BookingConfirmation is what both booking entry points return.
type BookingConfirmation struct {
	Success             bool   `json:"success"`
	BookingID           string `json:"bookingId,omitempty"`
	BookingNumber       string `json:"bookingNumber"`
	VendorID            string `json:"vendorId"`
	VendorName          string `json:"vendorName"`
	VendorCategory      string `json:"vendorCategory"`
	EventDate           string `json:"eventDate"`
	GuestCount          int    `json:"guestCount,omitempty"`
	TotalAmount         int64  `json:"totalAmount"`
	Status              string `json:"status"`
	Persisted           bool   `json:"persisted"`
	ConfirmationMessage string `json:"confirmationMessage"`

	// Record is the persisted booking; nil for guests.
	Record *Booking `json:"-"`
}
