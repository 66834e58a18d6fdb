package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/models"
)

type sessionService struct {
	entities EntityStore
	logger   *logger.Logger

	mu   sync.Mutex
	user *models.User
}

// NewSessionService returns a [SessionService] that loads and unloads
// entities as users sign in and out.
func NewSessionService(entities EntityStore, log *logger.Logger) SessionService {
	return &sessionService{entities: entities, logger: log}
}

func (s *sessionService) Login(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		return ErrEmptyUserID
	}
	if s.user != nil && s.user.ID != user.ID {
		s.logger.Info().Str("user_id", s.user.ID).Msg("switching user, signing out first")
		s.entities.Logout(ctx)
		s.user = nil
	}

	if err := s.entities.Login(ctx, user); err != nil {
		return err
	}

	s.user = &user
	s.logger.Info().Str("user_id", user.ID).Str("display_name", user.DisplayName()).Msg("user signed in")
	return nil
}

func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	s.entities.Logout(ctx)
	s.logger.Info().Str("user_id", s.user.ID).Msg("user signed out")
	s.user = nil
}

func (s *sessionService) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}
