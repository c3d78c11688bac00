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

type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new employee. Status defaults to "active" when not
// supplied; ID and CreatedAt are assigned here and never change afterwards.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	status := domain.EmployeeStatus(input.Status)
	if status == "" {
		status = domain.EmployeeActive
	}

	employee := &domain.Employee{
		ID:           ksuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		Status:       status,
		ProfileImage: input.ProfileImage,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		s.logger.Error().Err(err).Msg("failed to create employee")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("employee").Inc()
	s.logger.Info().Str("employee_id", employee.ID).Str("email", employee.Email).Msg("employee created")
	return employee, nil
}

// Update merges the supplied fields over the stored row. Absent fields are
// left untouched; ID and CreatedAt are immutable.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	employee, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.Status != nil {
		employee.Status = domain.EmployeeStatus(*input.Status)
	}
	if input.ProfileImage != nil {
		employee.ProfileImage = *input.ProfileImage
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		s.logger.Error().Err(err).Str("employee_id", id).Msg("failed to update employee")
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		metrics.EntitiesDeletedTotal.WithLabelValues("employee").Inc()
		s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	}
	return removed, nil
}

// Search matches the query case-insensitively against name and email.
func (s *EmployeeService) Search(ctx context.Context, query string) ([]domain.Employee, error) {
	metrics.SearchQueriesTotal.WithLabelValues("employee").Inc()
	return s.repo.Search(ctx, query)
}
