package tools

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for tools.
type RepositoryPort interface {
	List(ctx context.Context, params shared.ListParams) ([]Tool, shared.Pagination, error)
	Get(ctx context.Context, id int64) (Tool, error)
	Create(ctx context.Context, input ToolInput) (Tool, error)
	Update(ctx context.Context, id int64, input ToolInput) (Tool, error)
	Delete(ctx context.Context, id int64) error
	Calibrate(ctx context.Context, id int64, input CalibrationInput) (Tool, error)
}

// Page bundles a tool listing with its pagination metadata.
type Page struct {
	Tools      []Tool
	Pagination shared.Pagination
}

// Service handles tool inventory operations.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

// List returns a page of tools.
func (s *Service) List(ctx context.Context, params shared.ListParams) (Page, error) {
	key := "tools:list?" + params.CacheKey()
	return store.Query(ctx, s.cache, key, []string{shared.TagTools}, func(ctx context.Context) (Page, error) {
		tools, pagination, err := s.repo.List(ctx, params)
		if err != nil {
			return Page{}, err
		}
		return Page{Tools: tools, Pagination: pagination}, nil
	})
}

// Get fetches a single tool.
func (s *Service) Get(ctx context.Context, id int64) (Tool, error) {
	if id <= 0 {
		return Tool{}, fmt.Errorf("%w: invalid tool id", restc.ErrValidation)
	}
	key := fmt.Sprintf("tools:%d", id)
	return store.Query(ctx, s.cache, key, []string{shared.TagTools}, func(ctx context.Context) (Tool, error) {
		return s.repo.Get(ctx, id)
	})
}

// Create validates the form and creates a tool.
func (s *Service) Create(ctx context.Context, input ToolInput) (Tool, error) {
	if err := s.validator.Struct(input); err != nil {
		return Tool{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	tool, err := s.repo.Create(ctx, input)
	if err != nil {
		return Tool{}, err
	}
	s.invalidate()
	return tool, nil
}

// Update validates the form and updates a tool.
func (s *Service) Update(ctx context.Context, id int64, input ToolInput) (Tool, error) {
	if id <= 0 {
		return Tool{}, fmt.Errorf("%w: invalid tool id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return Tool{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	tool, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return Tool{}, err
	}
	s.invalidate()
	return tool, nil
}

// Delete removes a tool.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid tool id", restc.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Calibrate validates and records a calibration.
func (s *Service) Calibrate(ctx context.Context, id int64, input CalibrationInput) (Tool, error) {
	if id <= 0 {
		return Tool{}, fmt.Errorf("%w: invalid tool id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return Tool{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	tool, err := s.repo.Calibrate(ctx, id, input)
	if err != nil {
		return Tool{}, err
	}
	s.invalidate()
	return tool, nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		// Calibration status feeds the dashboard counts and tool reports.
		s.cache.Invalidate(shared.TagTools, shared.TagStats, shared.TagReports)
	}
}
