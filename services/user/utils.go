package user

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"mehfil/utils"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hasUpper     = regexp.MustCompile(`[A-Z]`)
	hasLower     = regexp.MustCompile(`[a-z]`)
	hasNumber    = regexp.MustCompile(`[0-9]`)
)

// ValidEmail reports whether email looks like an address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < 6 {
		return utils.NewValidationError("Password must be at least 6 characters long")
	}
	if !hasUpper.MatchString(pw) || !hasLower.MatchString(pw) || !hasNumber.MatchString(pw) {
		return utils.NewValidationError("Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// newEmailToken returns a random token for a mailed link and the hash that is stored.
func newEmailToken() (token, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}
	token = hex.EncodeToString(b)
	return token, utils.HashToken(token), nil
}
