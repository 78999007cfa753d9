package roles

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/rbac"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for roles.
type RepositoryPort interface {
	List(ctx context.Context) ([]rbac.Role, error)
	Get(ctx context.Context, id int64) (rbac.Role, error)
	Create(ctx context.Context, input RoleInput) (rbac.Role, error)
	Update(ctx context.Context, id int64, input RoleInput) (rbac.Role, error)
	Delete(ctx context.Context, id int64) error
	SetPermissions(ctx context.Context, id int64, input PermissionSetInput) error
}

// Service handles role management. System roles keep their name and
// description immutable and cannot be deleted; their permission set stays
// editable.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

// List returns all roles.
func (s *Service) List(ctx context.Context) ([]rbac.Role, error) {
	return store.Query(ctx, s.cache, "roles:list", []string{shared.TagRoles}, s.repo.List)
}

// Get fetches a single role.
func (s *Service) Get(ctx context.Context, id int64) (rbac.Role, error) {
	if id <= 0 {
		return rbac.Role{}, fmt.Errorf("%w: invalid role id", restc.ErrValidation)
	}
	key := fmt.Sprintf("roles:%d", id)
	return store.Query(ctx, s.cache, key, []string{shared.TagRoles}, func(ctx context.Context) (rbac.Role, error) {
		return s.repo.Get(ctx, id)
	})
}

// Create validates the form and creates a role.
func (s *Service) Create(ctx context.Context, input RoleInput) (rbac.Role, error) {
	if err := s.validator.Struct(input); err != nil {
		return rbac.Role{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	role, err := s.repo.Create(ctx, input)
	if err != nil {
		return rbac.Role{}, err
	}
	s.invalidate()
	return role, nil
}

// Update modifies a role's name and description. Blocked for system roles.
func (s *Service) Update(ctx context.Context, id int64, input RoleInput) (rbac.Role, error) {
	if err := s.validator.Struct(input); err != nil {
		return rbac.Role{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	if err := s.guardSystem(ctx, id); err != nil {
		return rbac.Role{}, err
	}
	role, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return rbac.Role{}, err
	}
	s.invalidate()
	return role, nil
}

// Delete removes a role. Blocked for system roles.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.guardSystem(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// SetPermissions replaces a role's permission set. Allowed for system roles.
func (s *Service) SetPermissions(ctx context.Context, id int64, input PermissionSetInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid role id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	if err := s.repo.SetPermissions(ctx, id, input); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service) guardSystem(ctx context.Context, id int64) error {
	role, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return fmt.Errorf("%w: system roles cannot be edited or deleted", restc.ErrValidation)
	}
	return nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		// Role changes reshape effective permission sets and the matrix.
		s.cache.Invalidate(shared.TagRoles, shared.TagPermissions, shared.TagOverrides)
	}
}
