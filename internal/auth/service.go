package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort abstracts the auth endpoints for the service.
type RepositoryPort interface {
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (Account, error)
}

// Service handles authentication flows and keeps the shared session in sync.
type Service struct {
	logger    *slog.Logger
	repo      RepositoryPort
	session   *shared.Session
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds a Service instance.
func NewService(logger *slog.Logger, repo RepositoryPort, session *shared.Session, cache *store.Store) *Service {
	return &Service{
		logger:    logger,
		repo:      repo,
		session:   session,
		cache:     cache,
		validator: validator.New(),
	}
}

// Login validates the credentials, authenticates against the backend and
// stores the token and user on the session.
func (s *Service) Login(ctx context.Context, creds Credentials) (Account, error) {
	if err := s.validator.Struct(creds); err != nil {
		return Account{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	result, err := s.repo.Login(ctx, creds)
	if err != nil {
		return Account{}, err
	}
	s.session.SetToken(result.Token)
	s.session.SetUser(shared.CurrentUser{
		ID:      result.User.ID,
		Name:    result.User.Name,
		Email:   result.User.Email,
		IsAdmin: result.User.IsAdmin,
	})
	return result.User, nil
}

// Logout clears the session and drops every cached query. The backend call
// is best-effort; local state is cleared regardless.
func (s *Service) Logout(ctx context.Context) {
	if err := s.repo.Logout(ctx); err != nil && s.logger != nil {
		s.logger.Warn("logout request failed", slog.Any("error", err))
	}
	s.session.Clear()
	if s.cache != nil {
		s.cache.Flush()
	}
}

// Refresh re-fetches the current profile and updates the session.
func (s *Service) Refresh(ctx context.Context) (Account, error) {
	account, err := s.repo.Me(ctx)
	if err != nil {
		return Account{}, err
	}
	s.session.SetUser(shared.CurrentUser{
		ID:      account.ID,
		Name:    account.Name,
		Email:   account.Email,
		IsAdmin: account.IsAdmin,
	})
	return account, nil
}
