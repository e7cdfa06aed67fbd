package routes

import (
	"time"

	"mehfil/handlers"
	"mehfil/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/forgot-password", hb.ForgotPasswordHandler)
		api.PUT("/forgot-password", hb.ResetPasswordHandler)
		api.PUT("/reset-password", hb.ResetPasswordHandler)
		api.GET("/verify-email", hb.VerifyEmailHandler)
		api.POST("/verify-email", hb.VerifyEmailHandler)

		api.POST("/logout", middleware.JWTAuthUserMiddleware(hb.Users, hb.AuthCache), hb.LogoutHandler)
	}
}

// RegisterBookingRoutes registers the account booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Users, hb.AuthCache))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
	}
}

// RegisterChatRoutes registers the assistant endpoint. Guests may chat too.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", middleware.OptionalUserAuth(hb.Users, hb.AuthCache), hb.ChatHandler)
}

// RegisterConversationRoutes registers saved chat history endpoints.
func RegisterConversationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/conversation")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Users, hb.AuthCache))
		api.POST("", hb.AppendMessageHandler)
		api.GET("", hb.ListConversationsHandler)
		api.GET("/:sessionId", hb.GetConversationHandler)
		api.PUT("/:sessionId", hb.SaveConversationHandler)
	}
}

// RegisterVendorRoutes registers the public vendor pages.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors")
	{
		api.GET("", hb.ListVendorsHandler)
		api.GET("/category/:category", hb.ListVendorsByCategory)
		api.GET("/:vendorId", hb.GetVendorHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterConversationRoutes(r, hb)
	RegisterVendorRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
