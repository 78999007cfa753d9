package departments

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository provides REST backed access to the department resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

// List returns all departments.
func (r *Repository) List(ctx context.Context) ([]Department, error) {
	var out struct {
		Departments []Department `json:"departments"`
	}
	if err := r.client.Get(ctx, "/departments", nil, &out); err != nil {
		return nil, err
	}
	return out.Departments, nil
}

// Get fetches a department by ID.
func (r *Repository) Get(ctx context.Context, id int64) (Department, error) {
	var out Department
	if err := r.client.Get(ctx, fmt.Sprintf("/departments/%d", id), nil, &out); err != nil {
		return Department{}, err
	}
	return out, nil
}

// Create inserts a new department.
func (r *Repository) Create(ctx context.Context, input DepartmentInput) (Department, error) {
	var out Department
	if err := r.client.Post(ctx, "/departments", input, &out); err != nil {
		return Department{}, err
	}
	return out, nil
}

// Update modifies an existing department.
func (r *Repository) Update(ctx context.Context, id int64, input DepartmentInput) (Department, error) {
	var out Department
	if err := r.client.Put(ctx, fmt.Sprintf("/departments/%d", id), input, &out); err != nil {
		return Department{}, err
	}
	return out, nil
}

// Delete removes a department.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/departments/%d", id))
}
