package resolver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/db"
)

// DBResolver resolves federated identities against the sso_users table.
type DBResolver struct {
	db *db.DB
}

func NewDBResolver(db *db.DB) *DBResolver {
	return &DBResolver{db: db}
}

func (r *DBResolver) Upsert(
	ctx context.Context,
	identity *auth.ExternalIdentity,
) (SSOUser, bool, error) {

	if identity == nil {
		return SSOUser{}, false, errors.New("identity is nil")
	}

	var u SSOUser
	var picture sql.NullString
	var isNew bool

	// Single-statement upsert so two concurrent first sign-ins with the
	// same subject cannot both miss an update and collide on the insert.
	// A returning user gets the profile snapshot refreshed in place;
	// (xmax = 0) reports whether the row was inserted.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sso_users (google_id, email, name, picture, last_login)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (google_id) DO UPDATE
		SET name = EXCLUDED.name, picture = EXCLUDED.picture, last_login = NOW()
		RETURNING id, google_id, email, name, picture, created_at, last_login, (xmax = 0)
	`,
		identity.Subject,
		identity.Email,
		identity.Name,
		identity.Picture,
	).Scan(&u.ID, &u.GoogleID, &u.Email, &u.Name, &picture, &u.CreatedAt, &u.LastLogin, &isNew)

	if err != nil {
		return SSOUser{}, false, fmt.Errorf("%w: upsert sso user: %v", auth.ErrStoreUnavailable, err)
	}

	u.Picture = picture.String
	return u, isNew, nil
}
