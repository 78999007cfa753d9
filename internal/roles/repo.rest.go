package roles

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/rbac"
)

// Repository provides REST backed access to the role resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

// List returns all roles.
func (r *Repository) List(ctx context.Context) ([]rbac.Role, error) {
	var out struct {
		Roles []rbac.Role `json:"roles"`
	}
	if err := r.client.Get(ctx, "/roles", nil, &out); err != nil {
		return nil, err
	}
	return out.Roles, nil
}

// Get fetches a role by ID.
func (r *Repository) Get(ctx context.Context, id int64) (rbac.Role, error) {
	var out rbac.Role
	if err := r.client.Get(ctx, fmt.Sprintf("/roles/%d", id), nil, &out); err != nil {
		return rbac.Role{}, err
	}
	return out, nil
}

// Create inserts a new role.
func (r *Repository) Create(ctx context.Context, input RoleInput) (rbac.Role, error) {
	var out rbac.Role
	if err := r.client.Post(ctx, "/roles", input, &out); err != nil {
		return rbac.Role{}, err
	}
	return out, nil
}

// Update modifies an existing role.
func (r *Repository) Update(ctx context.Context, id int64, input RoleInput) (rbac.Role, error) {
	var out rbac.Role
	if err := r.client.Put(ctx, fmt.Sprintf("/roles/%d", id), input, &out); err != nil {
		return rbac.Role{}, err
	}
	return out, nil
}

// Delete removes a role.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/roles/%d", id))
}

// SetPermissions replaces a role's permission assignments.
func (r *Repository) SetPermissions(ctx context.Context, id int64, input PermissionSetInput) error {
	return r.client.Put(ctx, fmt.Sprintf("/roles/%d/permissions", id), input, nil)
}
