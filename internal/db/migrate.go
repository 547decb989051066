package db

import (
	"context"
	"database/sql"
)

const bootstrapMigration = `
CREATE TABLE IF NOT EXISTS users (
    id bigserial PRIMARY KEY,
    username varchar(100) NOT NULL,
    email varchar(150) NOT NULL,
    password_digest char(64) NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique
ON users (email);

CREATE TABLE IF NOT EXISTS sso_users (
    id bigserial PRIMARY KEY,
    google_id varchar(255) NOT NULL,
    email varchar(255) NOT NULL,
    name varchar(255) NOT NULL,
    picture varchar(500),
    created_at timestamptz NOT NULL DEFAULT NOW(),
    last_login timestamptz
);

CREATE UNIQUE INDEX IF NOT EXISTS sso_users_google_id_unique
ON sso_users (google_id);

CREATE UNIQUE INDEX IF NOT EXISTS sso_users_email_unique
ON sso_users (email);

CREATE TABLE IF NOT EXISTS rooms (
    id uuid PRIMARY KEY,
    name varchar(150) NOT NULL,
    join_code char(6) NOT NULL,
    group_link text NOT NULL,
    creator_id bigint NOT NULL,
    creator_kind text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS rooms_name_idx
ON rooms (name);
`

// RunBootstrapMigration creates the schema if it does not exist yet. The
// statements are idempotent; duplicate-email enforcement lives in the
// unique index, not in application code.
func RunBootstrapMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, bootstrapMigration)
	return err
}
