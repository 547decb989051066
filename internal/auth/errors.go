package auth

import "errors"

// Authentication failure taxonomy. Store and provider failures are translated
// to one of these at the boundary; raw driver or transport errors never reach
// a response body.
var (
	// ErrInvalidCredentials covers both unknown identifier and wrong
	// password. The two cases are collapsed so responses cannot be used
	// for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoAccount is returned by credential stores when no row matches.
	// It never crosses the HTTP boundary; callers fold it into
	// ErrInvalidCredentials.
	ErrNoAccount = errors.New("no account found")

	ErrDuplicateEmail = errors.New("email already registered")
	ErrValidation     = errors.New("validation failed")

	// ErrInvalidState is a CSRF mismatch or a replayed state token during
	// the federated redirect flow. Always fails closed.
	ErrInvalidState = errors.New("invalid oauth state")

	ErrProviderExchange      = errors.New("provider exchange failed")
	ErrProviderDenied        = errors.New("provider reported consent denied")
	ErrMissingIdentityClaims = errors.New("identity claims missing")

	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrStoreUnavailable = errors.New("store unavailable")
)
