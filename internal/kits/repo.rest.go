package kits

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository provides REST backed access to the kit resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) List(ctx context.Context) ([]Kit, error) {
	var out struct {
		Kits []Kit `json:"kits"`
	}
	if err := r.client.Get(ctx, "/kits", nil, &out); err != nil {
		return nil, err
	}
	return out.Kits, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (Kit, error) {
	var out Kit
	if err := r.client.Get(ctx, fmt.Sprintf("/kits/%d", id), nil, &out); err != nil {
		return Kit{}, err
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, input KitInput) (Kit, error) {
	var out Kit
	if err := r.client.Post(ctx, "/kits", input, &out); err != nil {
		return Kit{}, err
	}
	return out, nil
}

func (r *Repository) Update(ctx context.Context, id int64, input KitInput) (Kit, error) {
	var out Kit
	if err := r.client.Put(ctx, fmt.Sprintf("/kits/%d", id), input, &out); err != nil {
		return Kit{}, err
	}
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/kits/%d", id))
}

// Reorder requests replenishment of a missing kit item.
func (r *Repository) Reorder(ctx context.Context, id int64, req ReorderRequest) error {
	return r.client.Post(ctx, fmt.Sprintf("/kits/%d/reorder", id), req, nil)
}
