package auth

import "github.com/google/uuid"

// NewSessionToken returns a fresh opaque session identifier (UUIDv4, 122
// random bits). Uniqueness is ultimately enforced by the sessions primary key.
func NewSessionToken() string {
	return uuid.NewString()
}
