// Package roles manages role records and their permission sets. Role and
// permission types live in the rbac package; this package owns the CRUD
// surface.
package roles

// RoleInput is the create/edit form payload.
type RoleInput struct {
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description" validate:"max=500"`
}

// PermissionSetInput replaces a role's permission assignments.
type PermissionSetInput struct {
	PermissionIDs []int64 `json:"permission_ids" validate:"required,dive,gt=0"`
}
