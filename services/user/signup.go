package user

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	userRepo "mehfil/database/repository/user"
	"mehfil/models"
	"mehfil/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func validateSignup(req SignupRequest) error {
	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !ValidEmail(req.Email) {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Name)) > maxNameLength {
		return ErrNameTooLong
	}
	return VerifyPasswordComplexity(req.Password)
}

// Signup registers a credentials account. It returns the message shown to the user.
func (s *DefaultUserService) Signup(ctx context.Context, req SignupRequest) (string, error) {
	if err := validateSignup(req); err != nil {
		return "", err
	}
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", utils.NewInternalError("signup lookup failed", err)
	}
	if existing != nil && existing.IsEmailVerified {
		return "", ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", utils.NewInternalError("failed to hash password", err)
	}
	token, tokenHash, err := newEmailToken()
	if err != nil {
		return "", utils.NewInternalError("failed to issue verification token", err)
	}
	verification := &models.TokenRecord{TokenHash: tokenHash, ExpiresAt: s.now().Add(verificationTTL)}

	if existing != nil {
		set := bson.M{
			"name":              name,
			"passwordHash":      string(hashed),
			"emailVerification": verification,
		}
		if err := s.Repo.UpdateFields(ctx, existing.ID, set); err != nil {
			return "", utils.NewInternalError("failed to refresh unverified account", err)
		}
		if err := s.Mailer.SendVerification(ctx, email, name, token); err != nil {
			s.logger().Error("Failed to resend verification email", zap.String("email", email), zap.Error(err))
			return "", utils.NewInternalError("Failed to send verification email", err)
		}
		return "Verification email sent. Please check your inbox.", nil
	}

	now := s.now()
	u := &models.User{
		ID:                uuid.New().String(),
		Name:              name,
		Email:             email,
		PasswordHash:      string(hashed),
		Role:              models.RoleMember,
		Provider:          models.ProviderCredentials,
		EmailVerification: verification,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return "", ErrUserExists
		}
		return "", utils.NewInternalError("failed to create user", err)
	}

	if err := s.Mailer.SendVerification(ctx, email, name, token); err != nil {
		s.logger().Error("Failed to send verification email", zap.String("email", email), zap.Error(err))
		if delErr := s.Repo.Delete(ctx, u.ID); delErr != nil {
			s.logger().Error("Failed to remove user after mail failure", zap.String("userID", u.ID), zap.Error(delErr))
		}
		return "", utils.NewInternalError("Failed to send verification email", err)
	}

	s.logger().Info("User registered", zap.String("userID", u.ID))
	return "Account created successfully! Please check your email to verify your account.", nil
}

// VerifyEmail marks the holder of an unexpired verification token as verified.
func (s *DefaultUserService) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrTokenRequired
	}
	u, err := s.Repo.GetByVerificationToken(ctx, utils.HashToken(token), s.now())
	if err != nil {
		return utils.NewInternalError("verification lookup failed", err)
	}
	if u == nil {
		return ErrInvalidToken
	}
	if err := s.Repo.UpdateFields(ctx, u.ID, bson.M{"isEmailVerified": true}, "emailVerification"); err != nil {
		return utils.NewInternalError("failed to verify email", err)
	}
	return nil
}
