package user

import (
	"context"
	"time"

	"mehfil/models"
	"mehfil/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks credentials and issues a session token.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrCredentials
	}
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, utils.NewInternalError("login lookup failed", err)
	}
	if u == nil {
		return nil, ErrInvalidLogin
	}
	if u.Provider != models.ProviderCredentials {
		return nil, wrongProvider(u.Provider)
	}
	if !u.IsEmailVerified {
		return nil, ErrEmailNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidLogin
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	token, err := utils.GenerateToken(u.ID, u.Email, ttl)
	if err != nil {
		return nil, utils.NewInternalError("failed to generate auth token", err)
	}
	now := s.now()
	session := models.Session{TokenHash: utils.HashToken(token), CreatedAt: now, ExpiresAt: now.Add(ttl)}
	if err := s.Repo.AddSession(ctx, u.ID, session); err != nil {
		return nil, utils.NewInternalError("failed to store session", err)
	}
	if err := utils.CacheAuthToken(ctx, s.AuthCache, session.TokenHash, u.ID); err != nil {
		s.logger().Warn("Failed to cache auth token", zap.String("userID", u.ID), zap.Error(err))
	}

	return &AuthResponse{Token: token, ExpiresAt: session.ExpiresAt, User: u}, nil
}

// Logout revokes the given token.
func (s *DefaultUserService) Logout(ctx context.Context, userID, token string) error {
	hash := utils.HashToken(token)
	if err := s.Repo.RemoveSession(ctx, userID, hash); err != nil {
		return utils.NewInternalError("failed to remove session", err)
	}
	if err := utils.DeleteAuthToken(ctx, s.AuthCache, hash); err != nil {
		s.logger().Warn("Failed to clear auth cache", zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("user lookup failed", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
