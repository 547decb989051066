package credentials

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the unsalted SHA-256 hex digest of the password.
// The digest must stay byte-compatible with the existing users table, which
// pins this to deterministic SHA-256; the lack of a salt is a known
// weakness (see DESIGN.md). Same input always yields the same output.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest and compares in constant time.
func VerifyPassword(digest string, password string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
