package models

import "time"

// Host is a connected process driving the editor: a window shell, a test
// harness or a UI panel.
type Host struct {
	// From JWT claims, or generated for anonymous hosts
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	Permissions int64  `json:"permissions"` // JWT claim: bitwise permission flags
	Activated   int64  `json:"activated"`   // JWT claim: activation timestamp or ban status
	Anonymous   bool   `json:"anonymous"`

	// Connection state
	Connected   bool      `json:"connected"`
	ConnectedAt time.Time `json:"connected_at"`

	SessionID string `json:"session_id"`
}

// PermPaint allows a host to change tools and paint.
const PermPaint int64 = 1

// IsActive checks if the account is activated and not banned
func (h *Host) IsActive() bool {
	// activated > 0 means activated
	// activated == 0 means not activated
	// activated == -1 means banned
	return h.Anonymous || h.Activated > 0
}

// IsBanned checks if the account is banned
func (h *Host) IsBanned() bool {
	return h.Activated == -1
}

// CanPaint reports whether the host may send tool commands. Anonymous hosts
// and hosts without any permission bits set are allowed.
func (h *Host) CanPaint() bool {
	return h.Anonymous || h.Permissions == 0 || h.Permissions&PermPaint != 0
}
