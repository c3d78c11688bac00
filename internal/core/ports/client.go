package ports

import (
	"context"

	"github.com/prootly/admin-api/internal/core/domain"
)

// CreateClientInput carries all data needed to create a client.
// Status defaults to "active" when empty.
type CreateClientInput struct {
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	Status        string
	Notes         string
}

// UpdateClientInput carries a partial update: only non-nil fields are
// validated and applied.
type UpdateClientInput struct {
	CompanyName   *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Status        *string
	Notes         *string
}

// ClientRepository is the storage contract for clients.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]domain.Client, error)
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]domain.Client, error)
}
