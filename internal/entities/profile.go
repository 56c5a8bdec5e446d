package entities

import "time"

// Role is a user's service-level role.
type Role string

// Roles. RoleForbidden overrides RoleAdmin: a forbidden user is never
// treated as an admin regardless of other grants.
const (
	RoleNone      Role = ""
	RoleAdmin     Role = "admin"
	RoleForbidden Role = "forbidden"
)

// Profile is the per-user record: display name plus role.
type Profile struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
