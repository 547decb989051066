package rooms

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("room not found")
	ErrWrongJoinCode = errors.New("wrong join code")
)

type Store interface {
	Create(ctx context.Context, room Room) error
	Get(ctx context.Context, id string) (Room, error)

	// Search returns rooms whose name contains q (case-insensitive);
	// empty q lists all rooms.
	Search(ctx context.Context, q string) ([]Room, error)
}
