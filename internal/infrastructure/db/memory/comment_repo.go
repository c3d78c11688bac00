package memory

import (
	"context"
	"sort"

	"github.com/prootly/admin-api/internal/core/domain"
)

// CommentRepository holds the comment collection.
type CommentRepository struct {
	rows *collection[domain.Comment]
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{rows: newCollection[domain.Comment]("comment")}
}

// List returns all comments ordered by CreatedAt descending.
func (r *CommentRepository) List(_ context.Context) ([]domain.Comment, error) {
	comments := r.rows.snapshot()
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *CommentRepository) Get(_ context.Context, id string) (*domain.Comment, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	return &row, nil
}

func (r *CommentRepository) Create(_ context.Context, c *domain.Comment) error {
	r.rows.put(c.ID, *c)
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.rows.delete(id), nil
}
