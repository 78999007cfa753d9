package announcements

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

// RepositoryPort defines data access methods for announcements.
type RepositoryPort interface {
	List(ctx context.Context, activeOnly bool) ([]Announcement, error)
	Create(ctx context.Context, input AnnouncementInput) (Announcement, error)
	Update(ctx context.Context, id int64, input AnnouncementInput) (Announcement, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles announcement management.
type Service struct {
	repo      RepositoryPort
	cache     *store.Store
	validator *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, cache *store.Store) *Service {
	return &Service{repo: repo, cache: cache, validator: validator.New()}
}

// List returns announcements.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]Announcement, error) {
	key := fmt.Sprintf("announcements:list:active=%t", activeOnly)
	return store.Query(ctx, s.cache, key, []string{shared.TagAnnouncements}, func(ctx context.Context) ([]Announcement, error) {
		return s.repo.List(ctx, activeOnly)
	})
}

// Create validates the form and creates an announcement.
func (s *Service) Create(ctx context.Context, input AnnouncementInput) (Announcement, error) {
	if err := s.validator.Struct(input); err != nil {
		return Announcement{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	item, err := s.repo.Create(ctx, input)
	if err != nil {
		return Announcement{}, err
	}
	s.invalidate()
	return item, nil
}

// Update validates the form and updates an announcement.
func (s *Service) Update(ctx context.Context, id int64, input AnnouncementInput) (Announcement, error) {
	if id <= 0 {
		return Announcement{}, fmt.Errorf("%w: invalid announcement id", restc.ErrValidation)
	}
	if err := s.validator.Struct(input); err != nil {
		return Announcement{}, fmt.Errorf("%w: %v", restc.ErrValidation, err)
	}
	item, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return Announcement{}, err
	}
	s.invalidate()
	return item, nil
}

// Delete removes an announcement.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid announcement id", restc.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate(shared.TagAnnouncements)
	}
}
