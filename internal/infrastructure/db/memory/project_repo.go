package memory

import (
	"context"

	"github.com/prootly/admin-api/internal/core/domain"
)

// ProjectRepository holds the project collection.
type ProjectRepository struct {
	rows *collection[domain.Project]
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{rows: newCollection[domain.Project]("project")}
}

func (r *ProjectRepository) List(_ context.Context) ([]domain.Project, error) {
	return r.rows.snapshot(), nil
}

func (r *ProjectRepository) Get(_ context.Context, id string) (*domain.Project, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &row, nil
}

func (r *ProjectRepository) Create(_ context.Context, p *domain.Project) error {
	r.rows.put(p.ID, *p)
	return nil
}

func (r *ProjectRepository) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.rows.get(p.ID); !ok {
		return domain.ErrProjectNotFound
	}
	r.rows.put(p.ID, *p)
	return nil
}

func (r *ProjectRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.rows.delete(id), nil
}

func (r *ProjectRepository) CountByStatus(_ context.Context) (map[domain.ProjectStatus]int, error) {
	counts := make(map[domain.ProjectStatus]int)
	for _, p := range r.rows.snapshot() {
		counts[p.Status]++
	}
	return counts, nil
}
