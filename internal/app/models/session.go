package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated admin session. The session ID travels
// inside the JWT; logout revokes the row, which invalidates the token before
// its natural expiry.
type Session struct {
	ID        uuid.UUID  `json:"id"`
	AdminID   int64      `json:"admin_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Active reports whether the session can still authorize requests.
func (s *Session) Active(now time.Time) bool {
	if s.RevokedAt != nil {
		return false
	}
	return now.Before(s.ExpiresAt)
}
