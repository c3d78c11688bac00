package memory

import (
	"context"

	"github.com/prootly/admin-api/internal/core/domain"
)

// UserRepository holds the user collection.
type UserRepository struct {
	rows *collection[domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{rows: newCollection[domain.User]("user")}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	return r.rows.snapshot(), nil
}

func (r *UserRepository) Get(_ context.Context, id string) (*domain.User, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &row, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.rows.snapshot() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, u *domain.User) error {
	r.rows.put(u.ID, *u)
	return nil
}
