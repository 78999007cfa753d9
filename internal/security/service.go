package security

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for security settings.
type RepositoryPort interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, input SettingsInput) (Settings, error)
}

// Service manages security settings and keeps the session timeout in sync
// with the backend configuration.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	session   *shared.Session
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store, session *shared.Session) *Service {
	return &Service{repo: repo, cache: cache, session: session, validator: validator.New()}
}

func (s *Service) Get(ctx context.Context) (Settings, error) {
	settings, err := store.Query(ctx, s.cache, "security:settings", []string{shared.TagSecurity}, func(ctx context.Context) (Settings, error) {
		return s.repo.Get(ctx)
	})
	if err != nil {
		return Settings{}, err
	}
	s.syncSession(settings)
	return settings, nil
}

func (s *Service) Update(ctx context.Context, input SettingsInput) (Settings, error) {
	if err := s.validator.Struct(input); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	settings, err := s.repo.Update(ctx, input)
	if err != nil {
		return Settings{}, err
	}
	if s.cache != nil {
		s.cache.Invalidate(shared.TagSecurity)
	}
	s.syncSession(settings)
	return settings, nil
}

func (s *Service) syncSession(settings Settings) {
	if s.session == nil {
		return
	}
	s.session.SetTimeout(time.Duration(settings.SessionTimeoutMinutes) * time.Minute)
}
