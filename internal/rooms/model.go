package rooms

import (
	"time"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

// Room is a named group gated by a short numeric join code, pointing at an
// external messaging-group link. The join code is a weak shared secret
// compared in plaintext; it sits outside the auth core's trust boundary.
type Room struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	JoinCode    string            `json:"-"`
	GroupLink   string            `json:"group_link,omitempty"`
	CreatorID   int64             `json:"creator_id"`
	CreatorKind auth.IdentityKind `json:"creator_kind"`
	CreatedAt   time.Time         `json:"created_at"`
}
