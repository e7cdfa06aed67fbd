package repository

import (
	bookingRepo "mehfil/database/repository/booking"
	conversationRepo "mehfil/database/repository/conversation"
	userRepo "mehfil/database/repository/user"
	vendorRepo "mehfil/database/repository/vendor"
)

// Re-export the VendorRepository interface and constructors.
type VendorRepository = vendorRepo.VendorRepository

var (
	NewMemoryVendorRepo = vendorRepo.NewMemoryVendorRepo
	NewMongoVendorRepo  = vendorRepo.NewMongoVendorRepo
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the ConversationRepository interface and constructor.
type ConversationRepository = conversationRepo.ConversationRepository

var NewMongoConversationRepo = conversationRepo.NewMongoConversationRepo

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepository = userRepo.NewMongoUserRepo
