package ports

import (
	"context"

	"github.com/prootly/admin-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a login account.
type CreateUserInput struct {
	Username string
	Password string
}

// UserRepository is the storage contract for users.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// UserService defines use-case operations for users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
