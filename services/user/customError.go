package user

import "mehfil/utils"

var (
	ErrMissingFields     = utils.NewValidationError("All fields are required")
	ErrPasswordMismatch  = utils.NewValidationError("Passwords do not match")
	ErrInvalidEmail      = utils.NewValidationError("Please enter a valid email address")
	ErrEmailRequired     = utils.NewValidationError("Email is required")
	ErrNameTooLong       = utils.NewValidationError("Name cannot be more than 50 characters")
	ErrUserExists        = utils.NewConflictError("User already exists with this email")
	ErrTokenRequired     = utils.NewValidationError("Verification token is required")
	ErrInvalidToken      = utils.NewValidationError("Invalid or expired verification token")
	ErrResetFields       = utils.NewValidationError("Token and password are required")
	ErrInvalidResetToken = utils.NewValidationError("Invalid or expired reset token")
	ErrCredentials       = utils.NewValidationError("Please enter both email and password")
	ErrInvalidLogin      = utils.NewUnauthorizedError("Invalid email or password")
	ErrEmailNotVerified  = utils.NewUnauthorizedError("Please verify your email before signing in")
	ErrUserNotFound      = utils.NewNotFoundError("User not found")
)

func wrongProvider(provider string) error {
	return utils.NewUnauthorizedError("Please sign in with " + provider)
}
