package db

import "database/sql"

// DB wraps the shared *sql.DB handle so stores take an explicit dependency
// instead of reaching for a package-level connection.
type DB struct {
	*sql.DB
}
