package security

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository manages security settings over the backend API.
type Repository struct {
	client *restc.Client
}

func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) Get(ctx context.Context) (Settings, error) {
	var settings Settings
	if err := r.client.Get(ctx, "/security/session-timeout", nil, &settings); err != nil {
		return Settings{}, fmt.Errorf("get security settings: %w", err)
	}
	return settings, nil
}

func (r *Repository) Update(ctx context.Context, input SettingsInput) (Settings, error) {
	var settings Settings
	if err := r.client.Put(ctx, "/security/session-timeout", input, &settings); err != nil {
		return Settings{}, fmt.Errorf("update security settings: %w", err)
	}
	return settings, nil
}
