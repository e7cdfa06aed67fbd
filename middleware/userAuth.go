package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"mehfil/models"
	"mehfil/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	ContextUserID = "userID"
	ContextToken  = "authToken"
)

// UserLookup loads the account that owns a token.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// authenticate resolves the user for tokenString, checking the auth cache
// before the stored sessions.
func authenticate(ctx context.Context, users UserLookup, cache *redis.Client, tokenString string) (string, bool) {
	userID, err := utils.ExtractIDFromToken(tokenString)
	if err != nil || userID == "" {
		return "", false
	}
	hash := utils.HashToken(tokenString)
	logger := utils.GetLogger()

	cached, err := utils.LookupAuthToken(ctx, cache, hash)
	if err != nil {
		logger.Warn("Auth cache unavailable, falling back to DB lookup", zap.Error(err))
	}
	if cached != "" {
		return userID, cached == userID
	}

	usr, err := users.GetByID(ctx, userID)
	if err != nil {
		logger.Error("Auth user lookup failed", zap.String("userID", userID), zap.Error(err))
		return "", false
	}
	if usr == nil || !usr.HasSession(hash, time.Now()) {
		return "", false
	}
	if err := utils.CacheAuthToken(ctx, cache, hash, userID); err != nil {
		logger.Warn("Failed to cache auth token", zap.Error(err))
	}
	return userID, true
}

// JWTAuthUserMiddleware rejects requests without a live session token.
func JWTAuthUserMiddleware(users UserLookup, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Unauthorized"})
			return
		}
		userID, ok := authenticate(c.Request.Context(), users, cache, tokenString)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Unauthorized"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

// OptionalUserAuth identifies the user when a valid token is sent and
// otherwise lets the request through anonymously.
func OptionalUserAuth(users UserLookup, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if userID, ok := authenticate(c.Request.Context(), users, cache, tokenString); ok {
				c.Set(ContextUserID, userID)
				c.Set(ContextToken, tokenString)
			}
		}
		c.Next()
	}
}
