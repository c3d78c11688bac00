package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/prootly/admin-api/internal/api/metrics"
	"github.com/prootly/admin-api/internal/core/domain"
	"github.com/prootly/admin-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Create stores a new login account. Usernames are unique: a second create
// with the same username fails with ErrUsernameTaken.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	existing, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	user := &domain.User{
		ID:       ksuid.New().String(),
		Username: input.Username,
		Password: input.Password,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("user").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}
