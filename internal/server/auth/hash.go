// Package auth implements the credential primitives of the POS admin core:
// the salted password digest and session token generation.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// HashPassword returns the lowercase hex SHA-256 digest of password+salt.
// Single-round on purpose: every stored credential was produced by this
// exact function, so introducing stretching here would lock out every
// existing account. Known limitation, kept.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a candidate password against a stored digest.
// The store may hold mixed-case hex, so the comparison is case-insensitive
// on the hex text and constant-shape on the bytes.
func VerifyPassword(password, salt, storedHash string) bool {
	computed := HashPassword(password, salt)
	stored := strings.ToLower(storedHash)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}
