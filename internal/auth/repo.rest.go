package auth

import (
	"context"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository provides REST backed access to the auth endpoints.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

// Login exchanges credentials for a bearer token.
func (r *Repository) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var out LoginResult
	if err := r.client.Post(ctx, "/auth/login", creds, &out); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// Logout invalidates the current token server-side.
func (r *Repository) Logout(ctx context.Context) error {
	return r.client.Post(ctx, "/auth/logout", nil, nil)
}

// Me fetches the profile for the current token.
func (r *Repository) Me(ctx context.Context) (Account, error) {
	var out Account
	if err := r.client.Get(ctx, "/auth/me", nil, &out); err != nil {
		return Account{}, err
	}
	return out, nil
}
