package userRepo

import (
	"context"
	"errors"
	"time"

	"mehfil/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrEmailTaken is returned by Create when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Missing users yield nil, nil.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its lower-cased email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByVerificationToken finds the user holding an unexpired email verification token hash.
	GetByVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*models.User, error)
	// GetByResetToken finds the user holding an unexpired password reset token hash.
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// UpdateFields applies $set and $unset to a user and bumps updatedAt.
	UpdateFields(ctx context.Context, id string, set bson.M, unset ...string) error
	// AddSession stores a login token hash.
	AddSession(ctx context.Context, id string, session models.Session) error
	// RemoveSession drops a login token hash.
	RemoveSession(ctx context.Context, id, tokenHash string) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
}
