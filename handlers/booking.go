package handlers

import (
	"net/http"

	"mehfil/models"
	"mehfil/services/booking"
	"mehfil/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// createBookingRequest mirrors the web client. totalPrice is accepted but
// ignored; the amount always comes from the catalog.
type createBookingRequest struct {
	VendorID    string `json:"vendorId"`
	BookingDate string `json:"bookingDate"`
	Guests      int    `json:"guests"`
	TotalPrice  int64  `json:"totalPrice"`
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, errInvalidBody)
		return
	}
	userID := currentUserID(c)
	confirmation, err := h.Service.CreateBooking(c.Request.Context(), booking.Request{
		VendorID:   req.VendorID,
		EventDate:  req.BookingDate,
		GuestCount: req.Guests,
		Caller:     booking.Caller{UserID: userID, Level: booking.LevelMember},
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("Booking created",
		zap.String("userID", userID),
		zap.String("bookingNumber", confirmation.BookingNumber))
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Booking confirmed successfully! A confirmation email has been sent.",
		"booking":      confirmation.Record,
		"confirmation": confirmation.ConfirmationMessage,
	})
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}
