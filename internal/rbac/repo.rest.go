package rbac

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository provides REST backed access to the permission resources.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

// ListPermissions returns the full permission catalog.
func (r *Repository) ListPermissions(ctx context.Context) ([]Permission, error) {
	var out struct {
		Permissions []Permission `json:"permissions"`
	}
	if err := r.client.Get(ctx, "/permissions", nil, &out); err != nil {
		return nil, err
	}
	return out.Permissions, nil
}

// ListCategories returns the permission category names.
func (r *Repository) ListCategories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := r.client.Get(ctx, "/permissions/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Matrix returns the role/permission assignment matrix.
func (r *Repository) Matrix(ctx context.Context) ([]MatrixRow, error) {
	var out struct {
		Matrix []MatrixRow `json:"matrix"`
	}
	if err := r.client.Get(ctx, "/permissions/matrix", nil, &out); err != nil {
		return nil, err
	}
	return out.Matrix, nil
}

// GetUserGrants fetches the raw permission material for one user.
func (r *Repository) GetUserGrants(ctx context.Context, userID int64) (UserGrants, error) {
	var out UserGrants
	if err := r.client.Get(ctx, fmt.Sprintf("/users/%d/permissions", userID), nil, &out); err != nil {
		return UserGrants{}, err
	}
	return out, nil
}

// CreateOverride adds a user-specific grant or deny.
func (r *Repository) CreateOverride(ctx context.Context, userID int64, input OverrideInput) (Override, error) {
	var out Override
	if err := r.client.Post(ctx, fmt.Sprintf("/users/%d/permissions", userID), input, &out); err != nil {
		return Override{}, err
	}
	return out, nil
}

// DeleteOverride removes a user-specific override.
func (r *Repository) DeleteOverride(ctx context.Context, userID, permissionID int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/users/%d/permissions/%d", userID, permissionID))
}
