package warehouses

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for warehouses.
type RepositoryPort interface {
	List(ctx context.Context) ([]Warehouse, error)
	Get(ctx context.Context, id int64) (Warehouse, error)
	Create(ctx context.Context, input WarehouseInput) (Warehouse, error)
	Update(ctx context.Context, id int64, input WarehouseInput) (Warehouse, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles warehouse management.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

func (s *Service) List(ctx context.Context) ([]Warehouse, error) {
	return store.Query(ctx, s.cache, "warehouses:list", []string{shared.TagWarehouses}, s.repo.List)
}

func (s *Service) Get(ctx context.Context, id int64) (Warehouse, error) {
	if id <= 0 {
		return Warehouse{}, fmt.Errorf("%w: invalid warehouse id", restc.ErrValidation)
	}
	key := fmt.Sprintf("warehouses:%d", id)
	return store.Query(ctx, s.cache, key, []string{shared.TagWarehouses}, func(ctx context.Context) (Warehouse, error) {
		return s.repo.Get(ctx, id)
	})
}

func (s *Service) Create(ctx context.Context, input WarehouseInput) (Warehouse, error) {
	if err := s.validator.Struct(input); err != nil {
		return Warehouse{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	warehouse, err := s.repo.Create(ctx, input)
	if err != nil {
		return Warehouse{}, err
	}
	s.invalidate()
	return warehouse, nil
}

func (s *Service) Update(ctx context.Context, id int64, input WarehouseInput) (Warehouse, error) {
	if id <= 0 {
		return Warehouse{}, fmt.Errorf("%w: invalid warehouse id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return Warehouse{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	warehouse, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return Warehouse{}, err
	}
	s.invalidate()
	return warehouse, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid warehouse id", restc.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate(shared.TagWarehouses)
	}
}
