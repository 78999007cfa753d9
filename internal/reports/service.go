package reports

import (
	"context"
	"fmt"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for reports.
type RepositoryPort interface {
	Generate(ctx context.Context, kind string) (Report, error)
	Export(ctx context.Context, kind, format string) (Export, error)
}

var validKinds = map[string]struct{}{
	KindTools:     {},
	KindChemicals: {},
	KindKits:      {},
	KindOrders:    {},
	KindAdmin:     {},
}

var validFormats = map[string]struct{}{
	FormatPDF:   {},
	FormatExcel: {},
}

// Service handles report generation and export.
type Service struct {
	repo  RepositoryPort
	cache *store.Store
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Generate(ctx context.Context, kind string) (Report, error) {
	if _, ok := validKinds[kind]; !ok {
		return Report{}, fmt.Errorf("%w: unknown report kind %q", restc.ErrValidation, kind)
	}
	key := "reports:" + kind
	return store.Query(ctx, s.cache, key, []string{shared.TagReports}, func(ctx context.Context) (Report, error) {
		return s.repo.Generate(ctx, kind)
	})
}

// Export downloads a report document. Exports are never cached, every call
// produces a fresh document.
func (s *Service) Export(ctx context.Context, kind, format string) (Export, error) {
	if _, ok := validKinds[kind]; !ok {
		return Export{}, fmt.Errorf("%w: unknown report kind %q", restc.ErrValidation, kind)
	}
	if _, ok := validFormats[format]; !ok {
		return Export{}, fmt.Errorf("%w: unsupported export format %q", restc.ErrValidation, format)
	}
	return s.repo.Export(ctx, kind, format)
}
