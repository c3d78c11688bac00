package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/prootly/admin-api/internal/api/metrics"
	"github.com/prootly/admin-api/internal/core/domain"
	"github.com/prootly/admin-api/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new project. Status defaults to "new" when not supplied.
// ClientID is a weak reference and is stored without existence checks.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	status := domain.ProjectStatus(input.Status)
	if status == "" {
		status = domain.ProjectNew
	}

	project := &domain.Project{
		ID:        ksuid.New().String(),
		Name:      input.Name,
		Status:    status,
		ClientID:  input.ClientID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("project").Inc()
	s.logger.Info().Str("project_id", project.ID).Str("status", string(project.Status)).Msg("project created")
	return project, nil
}

// Update merges the supplied fields over the stored row.
func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Status != nil {
		project.Status = domain.ProjectStatus(*input.Status)
	}
	if input.ClientID != nil {
		project.ClientID = *input.ClientID
	}

	if err := s.repo.Update(ctx, project); err != nil {
		s.logger.Error().Err(err).Str("project_id", id).Msg("failed to update project")
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		metrics.EntitiesDeletedTotal.WithLabelValues("project").Inc()
		s.logger.Info().Str("project_id", id).Msg("project deleted")
	}
	return removed, nil
}

// Stats aggregates the current projects into counts and percentages per
// status. It is a pure projection recomputed on every call, never cached.
func (s *ProjectService) Stats(ctx context.Context) (*ports.ProjectStats, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, status := range domain.ProjectStatuses {
		total += counts[status]
	}

	stat := func(status domain.ProjectStatus) ports.StatusStat {
		count := counts[status]
		return ports.StatusStat{Count: count, Percentage: percentage(count, total)}
	}

	return &ports.ProjectStats{
		Total:     total,
		Completed: stat(domain.ProjectCompleted),
		Hold:      stat(domain.ProjectHold),
		New:       stat(domain.ProjectNew),
		Revision:  stat(domain.ProjectRevision),
	}, nil
}

// percentage returns count/total as a percent rounded to two decimals,
// and 0 when total is zero.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
