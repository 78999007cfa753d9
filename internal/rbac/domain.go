package rbac

import "time"

// Permission represents an atomic capability from the backend catalog.
type Permission struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Role represents a high-level permission grouping. System roles keep their
// name and description immutable; their permission set stays editable.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsSystem    bool      `json:"is_system"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OverrideType distinguishes grant from deny overrides.
type OverrideType string

// Override types.
const (
	OverrideGrant OverrideType = "grant"
	OverrideDeny  OverrideType = "deny"
)

// Override is a user-specific grant or deny that takes precedence over
// role-derived permissions, optionally time-bounded.
type Override struct {
	PermissionID   int64        `json:"permission_id"`
	PermissionName string       `json:"permission_name"`
	Type           OverrideType `json:"type"`
	ExpiresAt      *time.Time   `json:"expires_at,omitempty"`
	Reason         string       `json:"reason,omitempty"`
}

// ActiveAt reports whether the override is in effect at the given instant.
// Expiry is compared in UTC.
func (o Override) ActiveAt(now time.Time) bool {
	return o.ExpiresAt == nil || o.ExpiresAt.UTC().After(now.UTC())
}

// UserGrants is the raw permission material for one user: the administrator
// flag, assigned roles with their permission sets, and active or expired
// overrides.
type UserGrants struct {
	UserID    int64      `json:"user_id"`
	IsAdmin   bool       `json:"is_admin"`
	Roles     []Role     `json:"roles"`
	Overrides []Override `json:"overrides"`
}

// MatrixRow is one row of the role/permission matrix.
type MatrixRow struct {
	RoleID        int64   `json:"role_id"`
	RoleName      string  `json:"role_name"`
	PermissionIDs []int64 `json:"permission_ids"`
}
