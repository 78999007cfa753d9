package chemicals

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for chemicals.
type RepositoryPort interface {
	List(ctx context.Context, params shared.ListParams) ([]Chemical, shared.Pagination, error)
	Get(ctx context.Context, id int64) (Chemical, error)
	Create(ctx context.Context, input ChemicalInput) (Chemical, error)
	Update(ctx context.Context, id int64, input ChemicalInput) (Chemical, error)
	Delete(ctx context.Context, id int64) error
	Issue(ctx context.Context, id int64, input IssueInput) (Issuance, error)
	History(ctx context.Context, id int64) ([]Issuance, error)
}

// Page bundles a chemical listing with its pagination metadata.
type Page struct {
	Chemicals  []Chemical
	Pagination shared.Pagination
}

// Service handles chemical inventory operations.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

// List returns a page of chemicals.
func (s *Service) List(ctx context.Context, params shared.ListParams) (Page, error) {
	key := "chemicals:list?" + params.CacheKey()
	return store.Query(ctx, s.cache, key, []string{shared.TagChemicals}, func(ctx context.Context) (Page, error) {
		chemicals, pagination, err := s.repo.List(ctx, params)
		if err != nil {
			return Page{}, err
		}
		return Page{Chemicals: chemicals, Pagination: pagination}, nil
	})
}

// Get fetches a single chemical lot.
func (s *Service) Get(ctx context.Context, id int64) (Chemical, error) {
	if id <= 0 {
		return Chemical{}, fmt.Errorf("%w: invalid chemical id", restc.ErrValidation)
	}
	key := fmt.Sprintf("chemicals:%d", id)
	return store.Query(ctx, s.cache, key, []string{shared.TagChemicals}, func(ctx context.Context) (Chemical, error) {
		return s.repo.Get(ctx, id)
	})
}

// Create validates the form and creates a chemical lot.
func (s *Service) Create(ctx context.Context, input ChemicalInput) (Chemical, error) {
	if err := s.validator.Struct(input); err != nil {
		return Chemical{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	chemical, err := s.repo.Create(ctx, input)
	if err != nil {
		return Chemical{}, err
	}
	s.invalidate()
	return chemical, nil
}

// Update validates the form and updates a chemical lot.
func (s *Service) Update(ctx context.Context, id int64, input ChemicalInput) (Chemical, error) {
	if id <= 0 {
		return Chemical{}, fmt.Errorf("%w: invalid chemical id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return Chemical{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	chemical, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return Chemical{}, err
	}
	s.invalidate()
	return chemical, nil
}

// Delete removes a chemical lot.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid chemical id", restc.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Issue validates and records an issuance, then invalidates the issuance
// history alongside stock-derived views.
func (s *Service) Issue(ctx context.Context, id int64, input IssueInput) (Issuance, error) {
	if id <= 0 {
		return Issuance{}, fmt.Errorf("%w: invalid chemical id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return Issuance{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	issuance, err := s.repo.Issue(ctx, id, input)
	if err != nil {
		return Issuance{}, err
	}
	if s.cache != nil {
		s.cache.Invalidate(shared.TagChemicals, shared.TagIssuances, shared.TagStats, shared.TagReports)
	}
	return issuance, nil
}

// History lists the issuance history of a chemical lot.
func (s *Service) History(ctx context.Context, id int64) ([]Issuance, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid chemical id", restc.ErrValidation)
	}
	key := fmt.Sprintf("chemicals:%d:history", id)
	return store.Query(ctx, s.cache, key, []string{shared.TagIssuances}, func(ctx context.Context) ([]Issuance, error) {
		return s.repo.History(ctx, id)
	})
}

func (s *Service) invalidate() {
	if s.cache != nil {
		// Stock changes reshape the dashboard counts and report rows.
		s.cache.Invalidate(shared.TagChemicals, shared.TagStats, shared.TagReports)
	}
}
