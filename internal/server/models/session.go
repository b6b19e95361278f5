package models

import "time"

// Session is one browser session. The ID is the opaque bearer token carried
// in the sid cookie; it is never reused while a row referencing it exists
// (enforced by the primary key). Rows are created at login, never updated,
// and simply expire.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}
