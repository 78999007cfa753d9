package dashboard

import (
	"context"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository provides REST backed access to the admin stats endpoint.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

// GetStats fetches the precomputed aggregate counts.
func (r *Repository) GetStats(ctx context.Context) (Stats, error) {
	var out Stats
	if err := r.client.Get(ctx, "/admin/stats", nil, &out); err != nil {
		return Stats{}, err
	}
	return out, nil
}
