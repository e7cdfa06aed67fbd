package booking

import (
	"fmt"
	"strings"

	"mehfil/models"
	"mehfil/utils"

	"github.com/google/uuid"
)

// newBookingNumber returns a reference like MF-2025-3F9A1C.
func newBookingNumber(year int) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("MF-%d-%s", year, strings.ToUpper(suffix))
}

func confirmationMessage(c *models.BookingConfirmation) string {
	var b strings.Builder
	b.WriteString("Booking Confirmed!\n\n")
	fmt.Fprintf(&b, "Vendor: %s\n", c.VendorName)
	fmt.Fprintf(&b, "Category: %s\n", c.VendorCategory)
	fmt.Fprintf(&b, "Date: %s\n", c.EventDate)
	if c.GuestCount > 0 {
		fmt.Fprintf(&b, "Guests: %d\n", c.GuestCount)
	}
	fmt.Fprintf(&b, "Amount: PKR %s\n", utils.FormatAmount(c.TotalAmount))
	fmt.Fprintf(&b, "Booking ID: %s", c.BookingNumber)
	if c.Persisted {
		b.WriteString("\n\nA confirmation email is on its way.")
	} else {
		b.WriteString("\n\nSign in to keep this booking in your account.")
	}
	return b.String()
}
