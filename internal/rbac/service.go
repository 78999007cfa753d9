package rbac

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort abstracts the permission endpoints for the service.
type RepositoryPort interface {
	ListPermissions(ctx context.Context) ([]Permission, error)
	ListCategories(ctx context.Context) ([]string, error)
	Matrix(ctx context.Context) ([]MatrixRow, error)
	GetUserGrants(ctx context.Context, userID int64) (UserGrants, error)
	CreateOverride(ctx context.Context, userID int64, input OverrideInput) (Override, error)
	DeleteOverride(ctx context.Context, userID, permissionID int64) error
}

// OverrideInput is the payload for creating a user-specific override.
type OverrideInput struct {
	PermissionID int64        `json:"permission_id" validate:"required,gt=0"`
	Type         OverrideType `json:"type" validate:"required,oneof=grant deny"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
	Reason       string       `json:"reason,omitempty" validate:"max=500"`
}

// Service orchestrates permission reads and override mutations. Effective
// permission sets are recomputed on every read from cached raw material;
// they are never stored themselves.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	session   *shared.Session
	validator *validator.Validate
	clock     func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, cache *store.Store, session *shared.Session) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		session:   session,
		validator: validator.New(),
		clock:     time.Now,
	}
}

// SetClock overrides the time source. Used by tests.
func (s *Service) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Permissions returns the permission catalog.
func (s *Service) Permissions(ctx context.Context) ([]Permission, error) {
	return store.Query(ctx, s.cache, "rbac:permissions", []string{shared.TagPermissions}, s.repo.ListPermissions)
}

// Categories returns the permission category names.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return store.Query(ctx, s.cache, "rbac:categories", []string{shared.TagPermissions}, s.repo.ListCategories)
}

// Matrix returns the role/permission matrix.
func (s *Service) Matrix(ctx context.Context) ([]MatrixRow, error) {
	return store.Query(ctx, s.cache, "rbac:matrix", []string{shared.TagPermissions, shared.TagRoles}, s.repo.Matrix)
}

// UserGrants returns one user's roles and overrides.
func (s *Service) UserGrants(ctx context.Context, userID int64) (UserGrants, error) {
	if userID <= 0 {
		return UserGrants{}, fmt.Errorf("%w: invalid user id", restc.ErrValidation)
	}
	key := fmt.Sprintf("rbac:grants:%d", userID)
	tags := []string{shared.TagOverrides, shared.TagRoles, shared.TagUsers}
	return store.Query(ctx, s.cache, key, tags, func(ctx context.Context) (UserGrants, error) {
		return s.repo.GetUserGrants(ctx, userID)
	})
}

// EffectivePermissions computes the permission names in effect for a user.
func (s *Service) EffectivePermissions(ctx context.Context, userID int64) ([]string, error) {
	grants, err := s.UserGrants(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.Permissions(ctx)
	if err != nil {
		return nil, err
	}
	return Effective(grants.IsAdmin, grants.Roles, grants.Overrides, catalog, s.clock()), nil
}

// GrantOverride creates a user-specific override. Overrides are not
// applicable to administrator accounts.
func (s *Service) GrantOverride(ctx context.Context, userID int64, input OverrideInput) (Override, error) {
	if err := s.validator.Struct(input); err != nil {
		return Override{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	if err := s.guardAdmin(ctx, userID); err != nil {
		return Override{}, err
	}
	override, err := s.repo.CreateOverride(ctx, userID, input)
	if err != nil {
		return Override{}, err
	}
	s.invalidateOverrides()
	return override, nil
}

// RevokeOverride removes a user-specific override.
func (s *Service) RevokeOverride(ctx context.Context, userID, permissionID int64) error {
	if userID <= 0 || permissionID <= 0 {
		return fmt.Errorf("%w: invalid override reference", restc.ErrValidation)
	}
	if err := s.guardAdmin(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.DeleteOverride(ctx, userID, permissionID); err != nil {
		return err
	}
	s.invalidateOverrides()
	return nil
}

// Can reports whether the current session user holds the permission.
// A session attached to the context takes precedence over the injected one.
// Unauthenticated sessions hold nothing.
func (s *Service) Can(ctx context.Context, permission string) (bool, error) {
	user := s.currentUser(ctx)
	if user == nil {
		return false, nil
	}
	if user.IsAdmin {
		return true, nil
	}
	granted, err := s.EffectivePermissions(ctx, user.ID)
	if err != nil {
		return false, err
	}
	return HasPermission(granted, permission), nil
}

// CanAny reports whether the current session user holds at least one of the
// permissions.
func (s *Service) CanAny(ctx context.Context, permissions ...string) (bool, error) {
	user := s.currentUser(ctx)
	if user == nil {
		return false, nil
	}
	if user.IsAdmin {
		return true, nil
	}
	granted, err := s.EffectivePermissions(ctx, user.ID)
	if err != nil {
		return false, err
	}
	return HasAnyPermission(granted, permissions...), nil
}

func (s *Service) guardAdmin(ctx context.Context, userID int64) error {
	grants, err := s.UserGrants(ctx, userID)
	if err != nil {
		return err
	}
	if grants.IsAdmin {
		return fmt.Errorf("%w: overrides are not applicable to administrator accounts", restc.ErrValidation)
	}
	return nil
}

func (s *Service) currentUser(ctx context.Context) *shared.CurrentUser {
	if sess := shared.SessionFromContext(ctx); sess != nil {
		return sess.User()
	}
	if s.session == nil {
		return nil
	}
	return s.session.User()
}

func (s *Service) invalidateOverrides() {
	if s.cache != nil {
		s.cache.Invalidate(shared.TagOverrides)
	}
}
