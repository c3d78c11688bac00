package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/prootly/admin-api/internal/core/domain"
	"github.com/prootly/admin-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubEmployeeRepo struct {
	byID      map[string]*domain.Employee
	createErr error // if set, Create returns this error
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{byID: make(map[string]*domain.Employee)}
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	out := make([]domain.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Get(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *e
	r.byID[e.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	if _, ok := r.byID[e.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	clone := *e
	r.byID[e.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok, nil
}

func (r *stubEmployeeRepo) Search(_ context.Context, query string) ([]domain.Employee, error) {
	q := strings.ToLower(query)
	var matched []domain.Employee
	for _, e := range r.byID {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Email), q) {
			matched = append(matched, *e)
		}
	}
	return matched, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestEmployeeService_Create_AssignsIDAndDefaults(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Name:  "Sarah Mitchell",
		Email: "sarah@prootly.com",
		Role:  "Designer",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}
	if created.Status != domain.EmployeeActive {
		t.Fatalf("expected default status active, got %q", created.Status)
	}

	// Roundtrip: Get returns the stored row with input fields intact.
	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after create failed: %v", err)
	}
	if got.Name != "Sarah Mitchell" || got.Email != "sarah@prootly.com" || got.Role != "Designer" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("createdAt changed across roundtrip")
	}
}

func TestEmployeeService_Create_ExplicitStatusKept(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Name:   "Tom Alvarez",
		Email:  "tom@prootly.com",
		Role:   "Surveyor",
		Status: "inactive",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.EmployeeInactive {
		t.Fatalf("expected inactive, got %q", created.Status)
	}
}

func TestEmployeeService_Create_RepoError(t *testing.T) {
	repo := newStubEmployeeRepo()
	repo.createErr = errors.New("boom")
	svc := NewEmployeeService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateEmployeeInput{Name: "x", Email: "x@x.com", Role: "y"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestEmployeeService_Update_PartialFieldsOnly(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Name:  "James Carter",
		Email: "james@prootly.com",
		Role:  "Engineer",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	role := "Lead Engineer"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateEmployeeInput{Role: &role})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Role != "Lead Engineer" {
		t.Fatalf("role not applied: %q", updated.Role)
	}
	// Everything else untouched.
	if updated.Name != created.Name || updated.Email != created.Email || updated.Status != created.Status {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
	if updated.ID != created.ID || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("id or createdAt mutated by update")
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo(), zerolog.Nop())

	name := "Nobody"
	_, err := svc.Update(context.Background(), "missing", ports.UpdateEmployeeInput{Name: &name})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_Delete_Semantics(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateEmployeeInput{Name: "x", Email: "x@x.com", Role: "y"})

	removed, err := svc.Delete(context.Background(), created.ID)
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}

	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}

	removed, err = svc.Delete(context.Background(), created.ID)
	if err != nil || removed {
		t.Fatalf("second delete should report false, got removed=%v err=%v", removed, err)
	}
}
