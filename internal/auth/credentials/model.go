package credentials

import "time"

// LocalUser is a username/email + password account. Created once at signup
// and immutable afterwards; password changes are not supported.
type LocalUser struct {
	ID             int64
	Username       string // display name, not unique
	Email          string // unique across all local users
	PasswordDigest string // SHA-256 hex digest, never the plaintext
	CreatedAt      time.Time
}
