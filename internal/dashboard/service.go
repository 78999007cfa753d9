package dashboard

import (
	"context"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort abstracts stats access for the service.
type RepositoryPort interface {
	GetStats(ctx context.Context) (Stats, error)
}

// Service serves dashboard stats and derived alerts.
type Service struct {
	repo  RepositoryPort
	cache *store.Store
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache}
}

// Stats returns the aggregate counts, cached under the stats tag so any
// inventory mutation that invalidates it triggers a refetch.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return store.Query(ctx, s.cache, "dashboard:stats", []string{shared.TagStats}, s.repo.GetStats)
}

// Alerts fetches the current stats and derives the prioritized alert list.
func (s *Service) Alerts(ctx context.Context) ([]Alert, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return BuildAlerts(stats), nil
}

// Watch re-derives alerts whenever the stats tag is invalidated and passes
// them to fn. The returned cancel func stops the subscription.
func (s *Service) Watch(ctx context.Context, fn func([]Alert, error)) func() {
	if s.cache == nil {
		return func() {}
	}
	return s.cache.Subscribe([]string{shared.TagStats}, func(string) {
		fn(s.Alerts(ctx))
	})
}
