package aircraft

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository provides REST backed access to the aircraft type resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) List(ctx context.Context) ([]Type, error) {
	var out struct {
		AircraftTypes []Type `json:"aircraft_types"`
	}
	if err := r.client.Get(ctx, "/aircraft-types", nil, &out); err != nil {
		return nil, err
	}
	return out.AircraftTypes, nil
}

func (r *Repository) Create(ctx context.Context, input TypeInput) (Type, error) {
	var out Type
	if err := r.client.Post(ctx, "/aircraft-types", input, &out); err != nil {
		return Type{}, err
	}
	return out, nil
}

func (r *Repository) Update(ctx context.Context, id int64, input TypeInput) (Type, error) {
	var out Type
	if err := r.client.Put(ctx, fmt.Sprintf("/aircraft-types/%d", id), input, &out); err != nil {
		return Type{}, err
	}
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/aircraft-types/%d", id))
}
