package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/prootly/admin-api/internal/api/metrics"
	"github.com/prootly/admin-api/internal/core/domain"
	"github.com/prootly/admin-api/internal/core/ports"
)

type CommentService struct {
	repo   ports.CommentRepository
	logger zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, logger: logger}
}

// List returns all comments, newest first.
func (s *CommentService) List(ctx context.Context) ([]domain.Comment, error) {
	return s.repo.List(ctx)
}

func (s *CommentService) Create(ctx context.Context, input ports.CreateCommentInput) (*domain.Comment, error) {
	comment := &domain.Comment{
		ID:        ksuid.New().String(),
		Author:    input.Author,
		Company:   input.Company,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		s.logger.Error().Err(err).Msg("failed to create comment")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("comment").Inc()
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		metrics.EntitiesDeletedTotal.WithLabelValues("comment").Inc()
	}
	return removed, nil
}
