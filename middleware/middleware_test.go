package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mehfil/models"
	"mehfil/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUsers struct {
	users map[string]*models.User
	calls int
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.calls++
	return f.users[id], nil
}

func issue(t *testing.T, users *fakeUsers, userID string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, userID+"@example.com", time.Hour)
	require.NoError(t, err)
	users.users[userID] = &models.User{ID: userID, Sessions: []models.Session{
		{TokenHash: utils.HashToken(token), ExpiresAt: time.Now().Add(time.Hour)},
	}}
	return token
}

func router(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/me", mw, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID))
	})
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthUserMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	users := &fakeUsers{users: map[string]*models.User{}}
	token := issue(t, users, "u1")
	r := router(JWTAuthUserMiddleware(users, cache))

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "not-a-jwt").Code)

	w := get(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
	assert.Equal(t, 1, users.calls)

	w = get(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, users.calls, "second request should be served from the auth cache")
}

func TestJWTAuthUserMiddleware_RevokedSession(t *testing.T) {
	users := &fakeUsers{users: map[string]*models.User{}}
	token := issue(t, users, "u1")
	users.users["u1"].Sessions = nil

	r := router(JWTAuthUserMiddleware(users, nil))
	assert.Equal(t, http.StatusUnauthorized, get(r, token).Code)
}

func TestOptionalUserAuth(t *testing.T) {
	users := &fakeUsers{users: map[string]*models.User{}}
	token := issue(t, users, "u2")
	r := router(OptionalUserAuth(users, nil))

	w := get(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = get(r, "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = get(r, token)
	assert.Equal(t, "u2", w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}
