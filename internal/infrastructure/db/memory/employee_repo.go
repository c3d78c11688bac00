package memory

import (
	"context"
	"strings"

	"github.com/prootly/admin-api/internal/core/domain"
)

// EmployeeRepository holds the employee collection.
type EmployeeRepository struct {
	rows *collection[domain.Employee]
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{rows: newCollection[domain.Employee]("employee")}
}

func (r *EmployeeRepository) List(_ context.Context) ([]domain.Employee, error) {
	return r.rows.snapshot(), nil
}

func (r *EmployeeRepository) Get(_ context.Context, id string) (*domain.Employee, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return &row, nil
}

func (r *EmployeeRepository) Create(_ context.Context, e *domain.Employee) error {
	r.rows.put(e.ID, *e)
	return nil
}

func (r *EmployeeRepository) Update(_ context.Context, e *domain.Employee) error {
	if _, ok := r.rows.get(e.ID); !ok {
		return domain.ErrEmployeeNotFound
	}
	r.rows.put(e.ID, *e)
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.rows.delete(id), nil
}

// Search returns employees whose name or email contains the query,
// case-insensitively.
func (r *EmployeeRepository) Search(_ context.Context, query string) ([]domain.Employee, error) {
	q := strings.ToLower(query)
	matched := make([]domain.Employee, 0)
	for _, e := range r.rows.snapshot() {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Email), q) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
