package handlers

import (
	"mehfil/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Users     middleware.UserLookup
	AuthCache *redis.Client

	// Auth endpoints
	SignupHandler         gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	ForgotPasswordHandler gin.HandlerFunc
	ResetPasswordHandler  gin.HandlerFunc
	VerifyEmailHandler    gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc

	// Assistant endpoint
	ChatHandler gin.HandlerFunc

	// Conversation endpoints
	AppendMessageHandler     gin.HandlerFunc
	ListConversationsHandler gin.HandlerFunc
	GetConversationHandler   gin.HandlerFunc
	SaveConversationHandler  gin.HandlerFunc

	// Vendor endpoints
	ListVendorsHandler    gin.HandlerFunc
	ListVendorsByCategory gin.HandlerFunc
	GetVendorHandler      gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
