package departments

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for departments.
type RepositoryPort interface {
	List(ctx context.Context) ([]Department, error)
	Get(ctx context.Context, id int64) (Department, error)
	Create(ctx context.Context, input DepartmentInput) (Department, error)
	Update(ctx context.Context, id int64, input DepartmentInput) (Department, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles department management.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

// List returns all departments.
func (s *Service) List(ctx context.Context) ([]Department, error) {
	return store.Query(ctx, s.cache, "departments:list", []string{shared.TagDepartments}, s.repo.List)
}

// Get fetches a single department.
func (s *Service) Get(ctx context.Context, id int64) (Department, error) {
	if id <= 0 {
		return Department{}, fmt.Errorf("%w: invalid department id", restc.ErrValidation)
	}
	key := fmt.Sprintf("departments:%d", id)
	return store.Query(ctx, s.cache, key, []string{shared.TagDepartments}, func(ctx context.Context) (Department, error) {
		return s.repo.Get(ctx, id)
	})
}

// Create validates the form and creates a department.
func (s *Service) Create(ctx context.Context, input DepartmentInput) (Department, error) {
	if err := s.validator.Struct(input); err != nil {
		return Department{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	dept, err := s.repo.Create(ctx, input)
	if err != nil {
		return Department{}, err
	}
	s.invalidate()
	return dept, nil
}

// Update validates the form and updates a department.
func (s *Service) Update(ctx context.Context, id int64, input DepartmentInput) (Department, error) {
	if id <= 0 {
		return Department{}, fmt.Errorf("%w: invalid department id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return Department{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	dept, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return Department{}, err
	}
	s.invalidate()
	return dept, nil
}

// Delete removes a department.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid department id", restc.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate(shared.TagDepartments)
	}
}
