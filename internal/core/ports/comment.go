package ports

import (
	"context"

	"github.com/prootly/admin-api/internal/core/domain"
)

// CreateCommentInput carries all data needed to create a comment.
type CreateCommentInput struct {
	Author  string
	Company string
	Text    string
}

// CommentRepository is the storage contract for comments.
// List returns comments newest first.
type CommentRepository interface {
	List(ctx context.Context) ([]domain.Comment, error)
	Get(ctx context.Context, id string) (*domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	List(ctx context.Context) ([]domain.Comment, error)
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
