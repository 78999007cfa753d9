package announcements

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository provides REST backed access to the announcement resource.
type Repository struct {
	client *restc.Client
}

// NewRepository constructs a repository.
func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

// List returns announcements, optionally only active ones.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]Announcement, error) {
	var query url.Values
	if activeOnly {
		query = url.Values{"active": []string{"true"}}
	}
	var out struct {
		Announcements []Announcement `json:"announcements"`
	}
	if err := r.client.Get(ctx, "/announcements", query, &out); err != nil {
		return nil, err
	}
	return out.Announcements, nil
}

// Create inserts a new announcement.
func (r *Repository) Create(ctx context.Context, input AnnouncementInput) (Announcement, error) {
	var out Announcement
	if err := r.client.Post(ctx, "/announcements", input, &out); err != nil {
		return Announcement{}, err
	}
	return out, nil
}

// Update modifies an existing announcement.
func (r *Repository) Update(ctx context.Context, id int64, input AnnouncementInput) (Announcement, error) {
	var out Announcement
	if err := r.client.Put(ctx, fmt.Sprintf("/announcements/%d", id), input, &out); err != nil {
		return Announcement{}, err
	}
	return out, nil
}

// Delete removes an announcement.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/announcements/%d", id))
}
