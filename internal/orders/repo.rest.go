package orders

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository provides REST backed access to the order resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

// List returns orders, optionally filtered by status.
func (r *Repository) List(ctx context.Context, status string) ([]Order, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}
	var out struct {
		Orders []Order `json:"orders"`
	}
	if err := r.client.Get(ctx, "/orders", query, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// Get fetches an order by ID.
func (r *Repository) Get(ctx context.Context, id int64) (Order, error) {
	var out Order
	if err := r.client.Get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

// Create inserts a new order.
func (r *Repository) Create(ctx context.Context, input OrderInput) (Order, error) {
	var out Order
	if err := r.client.Post(ctx, "/orders", input, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

// UpdateStatus transitions an order to a new status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status string) (Order, error) {
	var out Order
	body := map[string]string{"status": status}
	if err := r.client.Put(ctx, fmt.Sprintf("/orders/%d/status", id), body, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

// Delete cancels and removes a draft order.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/orders/%d", id))
}
