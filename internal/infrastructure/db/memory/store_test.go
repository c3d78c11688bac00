package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prootly/admin-api/internal/core/domain"
)

func TestEmployeeRepository_SearchCaseInsensitive(t *testing.T) {
	repo := NewEmployeeRepository()
	ctx := context.Background()

	rows := []domain.Employee{
		{ID: "1", Name: "Sarah Mitchell", Email: "sarah@prootly.com"},
		{ID: "2", Name: "James Carter", Email: "james@prootly.com"},
		{ID: "3", Name: "Priya Sharma", Email: "priya@prootly.com"},
	}
	for i := range rows {
		if err := repo.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	// Uppercase query matches lowercase fields and vice versa.
	matched, err := repo.Search(ctx, "SARAH")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "1" {
		t.Fatalf("expected Sarah only, got %+v", matched)
	}

	// Substring across name or email: "ar" hits Sarah (name+email),
	// James Carter (name) and Priya Sharma (name).
	matched, _ = repo.Search(ctx, "ar")
	if len(matched) != 3 {
		t.Fatalf("expected 3 matches for %q, got %d", "ar", len(matched))
	}

	// Non-matching query is an empty list, not an error.
	matched, err = repo.Search(ctx, "zzz")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matched) != 0 {
		t.Fatalf("expected no matches, got %+v", matched)
	}
}

func TestClientRepository_SearchFields(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	rows := []domain.Client{
		{ID: "1", CompanyName: "SunPeak Energy", ContactPerson: "Laura Bennett", Email: "laura@sunpeak.com"},
		{ID: "2", CompanyName: "GreenGrid Solutions", ContactPerson: "Mark Osei", Email: "mark@greengrid.io"},
	}
	for i := range rows {
		if err := repo.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	for query, wantID := range map[string]string{
		"sunpeak":   "1", // company name and email
		"bennett":   "1", // contact person
		"greengrid": "2",
	} {
		matched, err := repo.Search(ctx, query)
		if err != nil {
			t.Fatalf("search %q: %v", query, err)
		}
		if len(matched) != 1 || matched[0].ID != wantID {
			t.Fatalf("search %q: expected client %s, got %+v", query, wantID, matched)
		}
	}
}

func TestCommentRepository_ListNewestFirst(t *testing.T) {
	repo := NewCommentRepository()
	ctx := context.Background()
	base := time.Now().UTC()

	// Insert out of order; List must sort by createdAt descending.
	for _, c := range []domain.Comment{
		{ID: "mid", Author: "b", Text: "middle", CreatedAt: base.Add(1 * time.Minute)},
		{ID: "old", Author: "a", Text: "oldest", CreatedAt: base},
		{ID: "new", Author: "c", Text: "newest", CreatedAt: base.Add(2 * time.Minute)},
	} {
		comment := c
		if err := repo.Create(ctx, &comment); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	comments, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	for i, wantID := range []string{"new", "mid", "old"} {
		if comments[i].ID != wantID {
			t.Fatalf("position %d: expected %s, got %s", i, wantID, comments[i].ID)
		}
	}
}

func TestProjectRepository_UpdateMissing(t *testing.T) {
	repo := NewProjectRepository()

	err := repo.Update(context.Background(), &domain.Project{ID: "ghost", Name: "x"})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestCollection_RowsAreCopies(t *testing.T) {
	repo := NewEmployeeRepository()
	ctx := context.Background()

	row := domain.Employee{ID: "1", Name: "Original"}
	if err := repo.Create(ctx, &row); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating what Get returned must not touch the stored row.
	got, _ := repo.Get(ctx, "1")
	got.Name = "Mutated"

	again, _ := repo.Get(ctx, "1")
	if again.Name != "Original" {
		t.Fatalf("store row aliased by caller mutation: %q", again.Name)
	}
}

func TestStore_Seed(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	employees, _ := store.Employees.List(ctx)
	clients, _ := store.Clients.List(ctx)
	projects, _ := store.Projects.List(ctx)
	comments, _ := store.Comments.List(ctx)

	if len(employees) == 0 || len(clients) == 0 || len(projects) == 0 || len(comments) == 0 {
		t.Fatalf("expected sample rows in every collection: %d/%d/%d/%d",
			len(employees), len(clients), len(projects), len(comments))
	}

	if _, err := store.Users.FindByUsername(ctx, "admin"); err != nil {
		t.Fatalf("expected seeded admin user: %v", err)
	}
}
