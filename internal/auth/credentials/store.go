package credentials

import "context"

type CreateRequest struct {
	Username       string
	Email          string
	PasswordDigest string
}

// Store persists local accounts. Implementations must surface a duplicate
// email as auth.ErrDuplicateEmail and an empty lookup as auth.ErrNoAccount;
// driver errors are wrapped in auth.ErrStoreUnavailable.
type Store interface {
	// FindByIdentifier matches identifier against username or email,
	// exactly as stored. Usernames are not unique: an ambiguous match
	// resolves deterministically to the lowest id.
	FindByIdentifier(ctx context.Context, identifier string) (LocalUser, error)

	Create(ctx context.Context, r CreateRequest) (LocalUser, error)
}
