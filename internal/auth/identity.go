package auth

// IdentityKind discriminates the two account tables. Local and federated
// identities share no primary key space, so anything that carries an
// identity id must also carry its kind.
type IdentityKind string

const (
	KindLocal     IdentityKind = "local"
	KindFederated IdentityKind = "federated"
)

// Valid reports whether k is one of the two known kinds. Session records
// read back from storage are rejected when this fails.
func (k IdentityKind) Valid() bool {
	return k == KindLocal || k == KindFederated
}

// Identity is the resolved account a session is bound to.
type Identity struct {
	Kind  IdentityKind `json:"kind"`
	ID    int64        `json:"id"`
	Label string       `json:"label"` // display name, never used for lookups
}

// ExternalIdentity represents a normalized identity returned by an OAuth
// provider. It contains facts only, no decisions.
type ExternalIdentity struct {
	Provider      string // e.g. "google"
	Subject       string // provider-scoped unique user identifier (sub)
	Email         string // email returned by provider
	Name          string // display name claim, may be empty
	Picture       string // profile image URL claim, may be empty
	EmailVerified bool   // whether provider asserts email ownership
}
