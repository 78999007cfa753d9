package warehouses

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository provides REST backed access to the warehouse resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) List(ctx context.Context) ([]Warehouse, error) {
	var out struct {
		Warehouses []Warehouse `json:"warehouses"`
	}
	if err := r.client.Get(ctx, "/warehouses", nil, &out); err != nil {
		return nil, err
	}
	return out.Warehouses, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (Warehouse, error) {
	var out Warehouse
	if err := r.client.Get(ctx, fmt.Sprintf("/warehouses/%d", id), nil, &out); err != nil {
		return Warehouse{}, err
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, input WarehouseInput) (Warehouse, error) {
	var out Warehouse
	if err := r.client.Post(ctx, "/warehouses", input, &out); err != nil {
		return Warehouse{}, err
	}
	return out, nil
}

func (r *Repository) Update(ctx context.Context, id int64, input WarehouseInput) (Warehouse, error) {
	var out Warehouse
	if err := r.client.Put(ctx, fmt.Sprintf("/warehouses/%d", id), input, &out); err != nil {
		return Warehouse{}, err
	}
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/warehouses/%d", id))
}
