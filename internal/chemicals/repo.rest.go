package chemicals

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
)

// Repository provides REST backed access to the chemical resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

type chemicalList struct {
	Chemicals  []Chemical        `json:"chemicals"`
	Pagination shared.Pagination `json:"pagination"`
}

// List returns a page of chemicals.
func (r *Repository) List(ctx context.Context, params shared.ListParams) ([]Chemical, shared.Pagination, error) {
	var out chemicalList
	if err := r.client.Get(ctx, "/chemicals", params.Values(), &out); err != nil {
		return nil, shared.Pagination{}, err
	}
	return out.Chemicals, out.Pagination, nil
}

// Get fetches a chemical by ID.
func (r *Repository) Get(ctx context.Context, id int64) (Chemical, error) {
	var out Chemical
	if err := r.client.Get(ctx, fmt.Sprintf("/chemicals/%d", id), nil, &out); err != nil {
		return Chemical{}, err
	}
	return out, nil
}

// Create inserts a new chemical lot.
func (r *Repository) Create(ctx context.Context, input ChemicalInput) (Chemical, error) {
	var out Chemical
	if err := r.client.Post(ctx, "/chemicals", input, &out); err != nil {
		return Chemical{}, err
	}
	return out, nil
}

// Update modifies an existing chemical lot.
func (r *Repository) Update(ctx context.Context, id int64, input ChemicalInput) (Chemical, error) {
	var out Chemical
	if err := r.client.Put(ctx, fmt.Sprintf("/chemicals/%d", id), input, &out); err != nil {
		return Chemical{}, err
	}
	return out, nil
}

// Delete removes a chemical lot.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/chemicals/%d", id))
}

// Issue records an issuance against a chemical lot.
func (r *Repository) Issue(ctx context.Context, id int64, input IssueInput) (Issuance, error) {
	var out Issuance
	if err := r.client.Post(ctx, fmt.Sprintf("/chemicals/%d/issue", id), input, &out); err != nil {
		return Issuance{}, err
	}
	return out, nil
}

// History lists the issuance history of a chemical lot.
func (r *Repository) History(ctx context.Context, id int64) ([]Issuance, error) {
	var out struct {
		Issuances []Issuance `json:"issuances"`
	}
	if err := r.client.Get(ctx, fmt.Sprintf("/chemicals/%d/history", id), nil, &out); err != nil {
		return nil, err
	}
	return out.Issuances, nil
}
