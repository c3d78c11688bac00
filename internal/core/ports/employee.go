package ports

import (
	"context"

	"github.com/prootly/admin-api/internal/core/domain"
)

// CreateEmployeeInput carries all data needed to create an employee.
// Status defaults to "active" when empty.
type CreateEmployeeInput struct {
	Name         string
	Email        string
	Role         string
	Status       string
	ProfileImage string
}

// UpdateEmployeeInput carries a partial update: only non-nil fields are
// validated and applied. ID and CreatedAt are never touched.
type UpdateEmployeeInput struct {
	Name         *string
	Email        *string
	Role         *string
	Status       *string
	ProfileImage *string
}

// EmployeeRepository is the storage contract for employees.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]domain.Employee, error)
}

// EmployeeService defines use-case operations for employees.
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]domain.Employee, error)
}
