package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/prootly/admin-api/internal/core/domain"
	"github.com/prootly/admin-api/internal/core/ports"
)

type stubProjectRepo struct {
	byID map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) Get(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok, nil
}

func (r *stubProjectRepo) CountByStatus(_ context.Context) (map[domain.ProjectStatus]int, error) {
	counts := make(map[domain.ProjectStatus]int)
	for _, p := range r.byID {
		counts[p.Status]++
	}
	return counts, nil
}

func seedProjects(t *testing.T, svc *ProjectService, statuses ...string) {
	t.Helper()
	for i, status := range statuses {
		_, err := svc.Create(context.Background(), ports.CreateProjectInput{
			Name:   "project",
			Status: status,
		})
		if err != nil {
			t.Fatalf("seed project %d: %v", i, err)
		}
	}
}

func TestProjectService_Create_DefaultsToNew(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProjectInput{Name: "Rooftop array"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.ProjectNew {
		t.Fatalf("expected default status new, got %q", created.Status)
	}
}

func TestProjectService_Stats_EmptyStore(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 0 {
		t.Fatalf("expected total 0, got %d", stats.Total)
	}
	for name, s := range map[string]ports.StatusStat{
		"completed": stats.Completed, "hold": stats.Hold, "new": stats.New, "revision": stats.Revision,
	} {
		if s.Count != 0 || s.Percentage != 0 {
			t.Fatalf("%s: expected zero stat with empty store, got %+v", name, s)
		}
	}
}

func TestProjectService_Stats_CountsAndPercentages(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())
	seedProjects(t, svc, "completed", "completed", "hold", "new", "new", "revision")

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.Total != 6 {
		t.Fatalf("expected total 6, got %d", stats.Total)
	}
	sum := stats.Completed.Count + stats.Hold.Count + stats.New.Count + stats.Revision.Count
	if sum != stats.Total {
		t.Fatalf("status counts %d do not sum to total %d", sum, stats.Total)
	}

	// 2/6 = 33.33 after rounding to two decimals.
	if stats.Completed.Count != 2 || stats.Completed.Percentage != 33.33 {
		t.Fatalf("completed: %+v", stats.Completed)
	}
	if stats.Hold.Count != 1 || stats.Hold.Percentage != 16.67 {
		t.Fatalf("hold: %+v", stats.Hold)
	}
	if stats.New.Count != 2 || stats.New.Percentage != 33.33 {
		t.Fatalf("new: %+v", stats.New)
	}
	if stats.Revision.Count != 1 || stats.Revision.Percentage != 16.67 {
		t.Fatalf("revision: %+v", stats.Revision)
	}
}

func TestProjectService_Stats_RecomputedAfterMutation(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, zerolog.Nop())
	seedProjects(t, svc, "new")

	before, _ := svc.Stats(context.Background())
	if before.New.Count != 1 || before.New.Percentage != 100 {
		t.Fatalf("before: %+v", before.New)
	}

	created, _ := svc.Create(context.Background(), ports.CreateProjectInput{Name: "p2", Status: "completed"})

	after, _ := svc.Stats(context.Background())
	if after.Total != 2 || after.New.Percentage != 50 || after.Completed.Percentage != 50 {
		t.Fatalf("after create: %+v", after)
	}

	if _, err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	final, _ := svc.Stats(context.Background())
	if final.Total != 1 || final.Completed.Count != 0 {
		t.Fatalf("after delete: %+v", final)
	}
}

func TestProjectService_Update_WeakClientReference(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateProjectInput{Name: "p"})

	// Any client id is accepted; existence is deliberately not checked.
	clientID := "no-such-client"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProjectInput{ClientID: &clientID})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ClientID != "no-such-client" {
		t.Fatalf("clientId not applied: %q", updated.ClientID)
	}
	if updated.Name != "p" || updated.Status != created.Status {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}
