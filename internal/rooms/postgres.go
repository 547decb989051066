package rooms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/db"
)

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, room Room) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rooms (id, name, join_code, group_link, creator_id, creator_kind)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		room.ID,
		room.Name,
		room.JoinCode,
		room.GroupLink,
		room.CreatorID,
		string(room.CreatorKind),
	)
	if err != nil {
		return fmt.Errorf("%w: create room: %v", auth.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Room, error) {
	var room Room
	var kind string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, join_code, group_link, creator_id, creator_kind, created_at
		FROM rooms
		WHERE id = $1
	`, id).Scan(
		&room.ID, &room.Name, &room.JoinCode, &room.GroupLink,
		&room.CreatorID, &kind, &room.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return Room{}, ErrNotFound
	}
	if err != nil {
		return Room{}, fmt.Errorf("%w: get room: %v", auth.ErrStoreUnavailable, err)
	}

	room.JoinCode = strings.TrimSpace(room.JoinCode)
	room.CreatorKind = auth.IdentityKind(kind)
	return room, nil
}

func (s *PostgresStore) Search(ctx context.Context, q string) ([]Room, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, join_code, group_link, creator_id, creator_kind, created_at
		FROM rooms
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`, q)
	if err != nil {
		return nil, fmt.Errorf("%w: search rooms: %v", auth.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var result []Room
	for rows.Next() {
		var room Room
		var kind string
		if err := rows.Scan(
			&room.ID, &room.Name, &room.JoinCode, &room.GroupLink,
			&room.CreatorID, &kind, &room.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan room: %v", auth.ErrStoreUnavailable, err)
		}
		room.JoinCode = strings.TrimSpace(room.JoinCode)
		room.CreatorKind = auth.IdentityKind(kind)
		result = append(result, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rooms: %v", auth.ErrStoreUnavailable, err)
	}

	return result, nil
}
