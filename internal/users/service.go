package users

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	List(ctx context.Context, params shared.ListParams) ([]User, shared.Pagination, error)
	Get(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, input CreateUserInput) (User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (User, error)
	Delete(ctx context.Context, id int64) error
	AssignRole(ctx context.Context, userID, roleID int64) error
	RemoveRole(ctx context.Context, userID, roleID int64) error
}

// Page bundles a user listing with its pagination metadata.
type Page struct {
	Users      []User
	Pagination shared.Pagination
}

// Service handles user management.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

// List returns a page of users.
func (s *Service) List(ctx context.Context, params shared.ListParams) (Page, error) {
	key := "users:list?" + params.CacheKey()
	return store.Query(ctx, s.cache, key, []string{shared.TagUsers}, func(ctx context.Context) (Page, error) {
		users, pagination, err := s.repo.List(ctx, params)
		if err != nil {
			return Page{}, err
		}
		return Page{Users: users, Pagination: pagination}, nil
	})
}

// Get fetches a single user.
func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, fmt.Errorf("%w: invalid user id", restc.ErrValidation)
	}
	key := fmt.Sprintf("users:%d", id)
	return store.Query(ctx, s.cache, key, []string{shared.TagUsers}, func(ctx context.Context) (User, error) {
		return s.repo.Get(ctx, id)
	})
}

// Create validates the form and creates a user.
func (s *Service) Create(ctx context.Context, input CreateUserInput) (User, error) {
	if err := s.validator.Struct(input); err != nil {
		return User{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	user, err := s.repo.Create(ctx, input)
	if err != nil {
		return User{}, err
	}
	s.invalidate()
	return user, nil
}

// Update validates the form and updates a user.
func (s *Service) Update(ctx context.Context, id int64, input UpdateUserInput) (User, error) {
	if id <= 0 {
		return User{}, fmt.Errorf("%w: invalid user id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return User{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	user, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return User{}, err
	}
	s.invalidate()
	return user, nil
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user id", restc.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// AssignRole adds a role to a user. Role assignments feed the effective
// permission computation, so the overrides tag is invalidated as well.
func (s *Service) AssignRole(ctx context.Context, userID, roleID int64) error {
	if userID <= 0 || roleID <= 0 {
		return fmt.Errorf("%w: invalid role assignment", restc.ErrValidation)
	}
	if err := s.repo.AssignRole(ctx, userID, roleID); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// RemoveRole removes a role from a user.
func (s *Service) RemoveRole(ctx context.Context, userID, roleID int64) error {
	if userID <= 0 || roleID <= 0 {
		return fmt.Errorf("%w: invalid role assignment", restc.ErrValidation)
	}
	if err := s.repo.RemoveRole(ctx, userID, roleID); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate(shared.TagUsers, shared.TagOverrides)
	}
}
