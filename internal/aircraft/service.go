package aircraft

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for aircraft types.
type RepositoryPort interface {
	List(ctx context.Context) ([]Type, error)
	Create(ctx context.Context, input TypeInput) (Type, error)
	Update(ctx context.Context, id int64, input TypeInput) (Type, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles aircraft type management.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

func (s *Service) List(ctx context.Context) ([]Type, error) {
	return store.Query(ctx, s.cache, "aircraft:list", []string{shared.TagAircraft}, s.repo.List)
}

func (s *Service) Create(ctx context.Context, input TypeInput) (Type, error) {
	if err := s.validator.Struct(input); err != nil {
		return Type{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	item, err := s.repo.Create(ctx, input)
	if err != nil {
		return Type{}, err
	}
	s.invalidate()
	return item, nil
}

func (s *Service) Update(ctx context.Context, id int64, input TypeInput) (Type, error) {
	if id <= 0 {
		return Type{}, fmt.Errorf("%w: invalid aircraft type id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return Type{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	item, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return Type{}, err
	}
	s.invalidate()
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid aircraft type id", restc.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate(shared.TagAircraft, shared.TagKits)
	}
}
