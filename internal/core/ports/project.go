package ports

import (
	"context"

	"github.com/prootly/admin-api/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project.
// Status defaults to "new" when empty. ClientID is stored as given and
// deliberately not checked against the client collection.
type CreateProjectInput struct {
	Name     string
	Status   string
	ClientID string
}

// UpdateProjectInput carries a partial update: only non-nil fields are
// validated and applied.
type UpdateProjectInput struct {
	Name     *string
	Status   *string
	ClientID *string
}

// StatusStat is the count and share of projects in one status.
type StatusStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ProjectStats is the aggregate view returned by GET /api/projects/stats.
// Percentages are count/total*100 rounded to two decimals; all zero when
// no projects exist.
type ProjectStats struct {
	Total     int        `json:"total"`
	Completed StatusStat `json:"completed"`
	Hold      StatusStat `json:"hold"`
	New       StatusStat `json:"new"`
	Revision  StatusStat `json:"revision"`
}

// ProjectRepository is the storage contract for projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context) (map[domain.ProjectStatus]int, error)
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*ProjectStats, error)
}
