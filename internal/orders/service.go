package orders

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for orders.
type RepositoryPort interface {
	List(ctx context.Context, status string) ([]Order, error)
	Get(ctx context.Context, id int64) (Order, error)
	Create(ctx context.Context, input OrderInput) (Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (Order, error)
	Delete(ctx context.Context, id int64) error
}

var validStatuses = map[string]struct{}{
	StatusPending:   {},
	StatusApproved:  {},
	StatusOrdered:   {},
	StatusReceived:  {},
	StatusCancelled: {},
}

// Service handles order management.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

func (s *Service) List(ctx context.Context, status string) ([]Order, error) {
	if status != "" {
		if _, ok := validStatuses[status]; !ok {
			return nil, fmt.Errorf("%w: unknown order status %q", restc.ErrValidation, status)
		}
	}
	key := "orders:list:status=" + status
	return store.Query(ctx, s.cache, key, []string{shared.TagOrders}, func(ctx context.Context) ([]Order, error) {
		return s.repo.List(ctx, status)
	})
}

func (s *Service) Get(ctx context.Context, id int64) (Order, error) {
	if id <= 0 {
		return Order{}, fmt.Errorf("%w: invalid order id", restc.ErrValidation)
	}
	key := fmt.Sprintf("orders:%d", id)
	return store.Query(ctx, s.cache, key, []string{shared.TagOrders}, func(ctx context.Context) (Order, error) {
		return s.repo.Get(ctx, id)
	})
}

func (s *Service) Create(ctx context.Context, input OrderInput) (Order, error) {
	if err := s.validator.Struct(input); err != nil {
		return Order{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	order, err := s.repo.Create(ctx, input)
	if err != nil {
		return Order{}, err
	}
	s.invalidate()
	return order, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (Order, error) {
	if id <= 0 {
		return Order{}, fmt.Errorf("%w: invalid order id", restc.ErrValidation)
	}
	if _, ok := validStatuses[status]; !ok {
		return Order{}, fmt.Errorf("%w: unknown order status %q", restc.ErrValidation, status)
	}
	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return Order{}, err
	}
	s.invalidate()
	return order, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid order id", restc.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate(shared.TagOrders, shared.TagReports)
	}
}
