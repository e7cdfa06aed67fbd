package user

import (
	"context"
	"time"

	userRepo "mehfil/database/repository/user"
	"mehfil/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	verificationTTL = 24 * time.Hour
	resetTTL        = time.Hour
	maxNameLength   = 50
)

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// AccountMailer sends the account emails.
type AccountMailer interface {
	SendVerification(ctx context.Context, to, name, token string) error
	SendPasswordReset(ctx context.Context, to, name, token string) error
}

type UserService interface {
	// Signup creates or refreshes an unverified account and mails a verification link.
	Signup(ctx context.Context, req SignupRequest) (string, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Logout(ctx context.Context, userID, token string) error
	// ForgotPassword mails a reset link when the account exists. It never reveals whether it does.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Mailer    AccountMailer
	AuthCache *redis.Client
	TokenTTL  time.Duration
	Logger    *zap.Logger
	Now       func() time.Time
}

func (s *DefaultUserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
