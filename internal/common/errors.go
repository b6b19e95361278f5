// Package common defines shared sentinel errors used across the POS admin
// auth core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors. ErrUnauthorized deliberately covers every
	// authentication failure (unknown user, missing credentials, wrong
	// password, dead session) so callers cannot enumerate accounts.
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)
