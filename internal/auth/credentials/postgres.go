package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/db"
)

// PostgresStore is the canonical Store backed by the users table.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByIdentifier(ctx context.Context, identifier string) (LocalUser, error) {
	var u LocalUser

	// ORDER BY id so a duplicated username resolves to the oldest account
	// instead of whichever row the planner returns first.
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_digest, created_at
		FROM users
		WHERE username = $1 OR email = $1
		ORDER BY id
		LIMIT 1
	`, identifier).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordDigest, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return LocalUser{}, auth.ErrNoAccount
	}
	if err != nil {
		return LocalUser{}, fmt.Errorf("%w: find local user: %v", auth.ErrStoreUnavailable, err)
	}

	u.PasswordDigest = strings.TrimSpace(u.PasswordDigest)
	return u, nil
}

func (s *PostgresStore) Create(ctx context.Context, r CreateRequest) (LocalUser, error) {
	var u LocalUser

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_digest)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_digest, created_at
	`, r.Username, r.Email, r.PasswordDigest).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordDigest, &u.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return LocalUser{}, auth.ErrDuplicateEmail
		}
		return LocalUser{}, fmt.Errorf("%w: create local user: %v", auth.ErrStoreUnavailable, err)
	}

	u.PasswordDigest = strings.TrimSpace(u.PasswordDigest)
	return u, nil
}
