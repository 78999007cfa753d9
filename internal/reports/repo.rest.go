package reports

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
)

// Repository fetches reports from the backend.
type Repository struct {
	client *restc.Client
}

func NewRepository(client *restc.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) Generate(ctx context.Context, kind string) (Report, error) {
	var report Report
	if err := r.client.Get(ctx, "/reports/"+kind, nil, &report); err != nil {
		return Report{}, fmt.Errorf("generate %s report: %w", kind, err)
	}
	return report, nil
}

func (r *Repository) Export(ctx context.Context, kind, format string) (Export, error) {
	query := url.Values{"format": {format}}
	payload, err := r.client.Download(ctx, "/reports/"+kind+"/export", query)
	if err != nil {
		return Export{}, fmt.Errorf("export %s report: %w", kind, err)
	}
	return Export{
		Filename:    payload.Filename,
		ContentType: payload.ContentType,
		Data:        payload.Data,
	}, nil
}
