package resolver

import (
	"context"
	"time"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

// SSOUser is an account authenticated by the external provider, linked by
// its stable subject id. The profile snapshot (name, picture) and last_login
// are refreshed in place on every successful re-authentication; the row is
// never duplicated per subject.
type SSOUser struct {
	ID        int64
	GoogleID  string // OIDC sub, unique
	Email     string // unique
	Name      string
	Picture   string
	CreatedAt time.Time
	LastLogin time.Time
}

// Resolver maps a verified external identity to a federated account.
// It is the ONLY place where identity-to-account mapping logic lives.
type Resolver interface {
	// Upsert returns the account for identity.Subject, creating it on
	// first login (isNew=true) or refreshing the profile snapshot on a
	// repeat login (isNew=false). Callers use isNew for welcome vs
	// welcome-back behavior.
	Upsert(ctx context.Context, identity *auth.ExternalIdentity) (SSOUser, bool, error)
}
