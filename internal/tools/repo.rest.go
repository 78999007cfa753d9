package tools

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
)

// Repository provides REST backed access to the tool resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

type toolList struct {
	Tools      []Tool            `json:"tools"`
	Pagination shared.Pagination `json:"pagination"`
}

// List returns a page of tools.
func (r *Repository) List(ctx context.Context, params shared.ListParams) ([]Tool, shared.Pagination, error) {
	var out toolList
	if err := r.client.Get(ctx, "/tools", params.Values(), &out); err != nil {
		return nil, shared.Pagination{}, err
	}
	return out.Tools, out.Pagination, nil
}

// Get fetches a tool by ID.
func (r *Repository) Get(ctx context.Context, id int64) (Tool, error) {
	var out Tool
	if err := r.client.Get(ctx, fmt.Sprintf("/tools/%d", id), nil, &out); err != nil {
		return Tool{}, err
	}
	return out, nil
}

// Create inserts a new tool.
func (r *Repository) Create(ctx context.Context, input ToolInput) (Tool, error) {
	var out Tool
	if err := r.client.Post(ctx, "/tools", input, &out); err != nil {
		return Tool{}, err
	}
	return out, nil
}

// Update modifies an existing tool.
func (r *Repository) Update(ctx context.Context, id int64, input ToolInput) (Tool, error) {
	var out Tool
	if err := r.client.Put(ctx, fmt.Sprintf("/tools/%d", id), input, &out); err != nil {
		return Tool{}, err
	}
	return out, nil
}

// Delete removes a tool.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/tools/%d", id))
}

// Calibrate records a completed calibration for a tool.
func (r *Repository) Calibrate(ctx context.Context, id int64, input CalibrationInput) (Tool, error) {
	var out Tool
	if err := r.client.Post(ctx, fmt.Sprintf("/tools/%d/calibrations", id), input, &out); err != nil {
		return Tool{}, err
	}
	return out, nil
}
