package user

import (
	"context"
	"strings"

	"mehfil/models"
	"mehfil/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrEmailRequired
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return utils.NewInternalError("forgot password lookup failed", err)
	}
	if u == nil || u.Provider != models.ProviderCredentials {
		return nil
	}

	token, tokenHash, err := newEmailToken()
	if err != nil {
		return utils.NewInternalError("failed to issue reset token", err)
	}
	reset := &models.TokenRecord{TokenHash: tokenHash, ExpiresAt: s.now().Add(resetTTL)}
	if err := s.Repo.UpdateFields(ctx, u.ID, bson.M{"passwordReset": reset}); err != nil {
		return utils.NewInternalError("failed to store reset token", err)
	}
	if err := s.Mailer.SendPasswordReset(ctx, u.Email, u.Name, token); err != nil {
		s.logger().Error("Failed to send password reset email", zap.String("userID", u.ID), zap.Error(err))
	}
	return nil
}

func (s *DefaultUserService) ResetPassword(ctx context.Context, token, password string) error {
	token = strings.TrimSpace(token)
	if token == "" || password == "" {
		return ErrResetFields
	}
	if err := VerifyPasswordComplexity(password); err != nil {
		return err
	}

	u, err := s.Repo.GetByResetToken(ctx, utils.HashToken(token), s.now())
	if err != nil {
		return utils.NewInternalError("reset lookup failed", err)
	}
	if u == nil {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewInternalError("failed to hash password", err)
	}
	if err := s.Repo.UpdateFields(ctx, u.ID, bson.M{"passwordHash": string(hashed)}, "passwordReset"); err != nil {
		return utils.NewInternalError("failed to update password", err)
	}
	return nil
}
