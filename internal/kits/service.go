package kits

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for kits.
type RepositoryPort interface {
	List(ctx context.Context) ([]Kit, error)
	Get(ctx context.Context, id int64) (Kit, error)
	Create(ctx context.Context, input KitInput) (Kit, error)
	Update(ctx context.Context, id int64, input KitInput) (Kit, error)
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, id int64, req ReorderRequest) error
}

// Service handles kit management.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

func (s *Service) List(ctx context.Context) ([]Kit, error) {
	return store.Query(ctx, s.cache, "kits:list", []string{shared.TagKits}, s.repo.List)
}

func (s *Service) Get(ctx context.Context, id int64) (Kit, error) {
	if id <= 0 {
		return Kit{}, fmt.Errorf("%w: invalid kit id", restc.ErrValidation)
	}
	key := fmt.Sprintf("kits:%d", id)
	return store.Query(ctx, s.cache, key, []string{shared.TagKits}, func(ctx context.Context) (Kit, error) {
		return s.repo.Get(ctx, id)
	})
}

func (s *Service) Create(ctx context.Context, input KitInput) (Kit, error) {
	if err := s.validator.Struct(input); err != nil {
		return Kit{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	kit, err := s.repo.Create(ctx, input)
	if err != nil {
		return Kit{}, err
	}
	s.invalidate()
	return kit, nil
}

func (s *Service) Update(ctx context.Context, id int64, input KitInput) (Kit, error) {
	if id <= 0 {
		return Kit{}, fmt.Errorf("%w: invalid kit id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return Kit{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	kit, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return Kit{}, err
	}
	s.invalidate()
	return kit, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid kit id", restc.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Reorder requests replenishment of a missing kit item. Pending reorders
// surface on the dashboard, so the stats tag is invalidated too.
func (s *Service) Reorder(ctx context.Context, id int64, req ReorderRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid kit id", restc.ErrValidation)
	}
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	if err := s.repo.Reorder(ctx, id, req); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(shared.TagKits, shared.TagOrders, shared.TagStats)
	}
	return nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate(shared.TagKits, shared.TagStats)
	}
}
