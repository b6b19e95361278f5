package models

// User is an account row from the users relation. The auth core only reads
// users; creating and mutating them belongs to the user-management endpoints.
//
// Nullable columns map to pointers. A NULL active column counts as active,
// which the repositories resolve at query time, so Active here is always the
// effective value.
type User struct {
	ID           string
	Email        *string
	Username     *string
	PasswordHash *string
	Salt         *string
	Role         Role
	BranchID     *string
	FullName     *string
	Active       bool
}

// CanAuthenticate reports whether the row carries both credential parts.
// A user missing either the hash or the salt can never log in and is treated
// the same as an unknown user.
func (u *User) CanAuthenticate() bool {
	return u.PasswordHash != nil && *u.PasswordHash != "" &&
		u.Salt != nil && *u.Salt != ""
}
