package memory

import (
	"context"
	"strings"

	"github.com/prootly/admin-api/internal/core/domain"
)

// ClientRepository holds the client collection.
type ClientRepository struct {
	rows *collection[domain.Client]
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{rows: newCollection[domain.Client]("client")}
}

func (r *ClientRepository) List(_ context.Context) ([]domain.Client, error) {
	return r.rows.snapshot(), nil
}

func (r *ClientRepository) Get(_ context.Context, id string) (*domain.Client, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return &row, nil
}

func (r *ClientRepository) Create(_ context.Context, c *domain.Client) error {
	r.rows.put(c.ID, *c)
	return nil
}

func (r *ClientRepository) Update(_ context.Context, c *domain.Client) error {
	if _, ok := r.rows.get(c.ID); !ok {
		return domain.ErrClientNotFound
	}
	r.rows.put(c.ID, *c)
	return nil
}

func (r *ClientRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.rows.delete(id), nil
}

// Search returns clients whose company name, contact person or email
// contains the query, case-insensitively.
func (r *ClientRepository) Search(_ context.Context, query string) ([]domain.Client, error) {
	q := strings.ToLower(query)
	matched := make([]domain.Client, 0)
	for _, c := range r.rows.snapshot() {
		if strings.Contains(strings.ToLower(c.CompanyName), q) ||
			strings.Contains(strings.ToLower(c.ContactPerson), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
