package models

import "time"

const (
	RoleMember = "user"

	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
	ProviderGithub      = "github"
)

// TokenRecord holds the hash of a single-use emailed token.
type TokenRecord struct {
	TokenHash string    `bson:"tokenHash" json:"-"`
	ExpiresAt time.Time `bson:"expiresAt" json:"-"`
}

// Session is one issued login token, stored by hash.
type Session struct {
	TokenHash string    `bson:"tokenHash" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// User is a Mehfil account.
type User struct {
	ID                string       `bson:"id" json:"id"`
	Name              string       `bson:"name" json:"name"`
	Email             string       `bson:"email" json:"email"`
	PasswordHash      string       `bson:"passwordHash" json:"-"`
	Role              string       `bson:"role" json:"role"`
	Provider          string       `bson:"provider" json:"provider"`
	IsEmailVerified   bool         `bson:"isEmailVerified" json:"isEmailVerified"`
	EmailVerification *TokenRecord `bson:"emailVerification,omitempty" json:"-"`
	PasswordReset     *TokenRecord `bson:"passwordReset,omitempty" json:"-"`
	Sessions          []Session    `bson:"sessions,omitempty" json:"-"`
	CreatedAt         time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// HasSession reports whether tokenHash is a live session at now.
func (u *User) HasSession(tokenHash string, now time.Time) bool {
	for _, s := range u.Sessions {
		if s.TokenHash == tokenHash && now.Before(s.ExpiresAt) {
			return true
		}
	}
	return false
}
