package users

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
)

// Repository provides REST backed access to the user resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

type userList struct {
	Users      []User            `json:"users"`
	Pagination shared.Pagination `json:"pagination"`
}

// List returns a page of users.
func (r *Repository) List(ctx context.Context, params shared.ListParams) ([]User, shared.Pagination, error) {
	var out userList
	if err := r.client.Get(ctx, "/users", params.Values(), &out); err != nil {
		return nil, shared.Pagination{}, err
	}
	return out.Users, out.Pagination, nil
}

// Get fetches a user by ID.
func (r *Repository) Get(ctx context.Context, id int64) (User, error) {
	var out User
	if err := r.client.Get(ctx, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Create inserts a new user.
func (r *Repository) Create(ctx context.Context, input CreateUserInput) (User, error) {
	var out User
	if err := r.client.Post(ctx, "/users", input, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Update modifies an existing user.
func (r *Repository) Update(ctx context.Context, id int64, input UpdateUserInput) (User, error) {
	var out User
	if err := r.client.Put(ctx, fmt.Sprintf("/users/%d", id), input, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Delete removes a user.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

// AssignRole adds a role to a user.
func (r *Repository) AssignRole(ctx context.Context, userID, roleID int64) error {
	body := map[string]int64{"role_id": roleID}
	return r.client.Post(ctx, fmt.Sprintf("/users/%d/roles", userID), body, nil)
}

// RemoveRole removes a role from a user.
func (r *Repository) RemoveRole(ctx context.Context, userID, roleID int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/users/%d/roles/%d", userID, roleID))
}
