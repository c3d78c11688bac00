package memory

import (
	"context"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/prootly/admin-api/internal/core/domain"
)

// Store bundles every entity collection. One Store is created at process
// start and injected into the services; it is the only authority over
// entity lifecycle.
type Store struct {
	Employees *EmployeeRepository
	Clients   *ClientRepository
	Projects  *ProjectRepository
	Comments  *CommentRepository
	Users     *UserRepository
}

func NewStore() *Store {
	return &Store{
		Employees: NewEmployeeRepository(),
		Clients:   NewClientRepository(),
		Projects:  NewProjectRepository(),
		Comments:  NewCommentRepository(),
		Users:     NewUserRepository(),
	}
}

// Seed loads the fixed sample rows the dashboard starts with.
func (s *Store) Seed(ctx context.Context) error {
	now := time.Now().UTC()

	employees := []domain.Employee{
		{Name: "Sarah Mitchell", Email: "sarah.mitchell@prootly.com", Role: "Designer", Status: domain.EmployeeActive},
		{Name: "James Carter", Email: "james.carter@prootly.com", Role: "Engineer", Status: domain.EmployeeActive},
		{Name: "Priya Sharma", Email: "priya.sharma@prootly.com", Role: "Project Manager", Status: domain.EmployeeActive},
		{Name: "Tom Alvarez", Email: "tom.alvarez@prootly.com", Role: "Surveyor", Status: domain.EmployeeInactive},
	}
	for i := range employees {
		employees[i].ID = ksuid.New().String()
		employees[i].CreatedAt = now
		if err := s.Employees.Create(ctx, &employees[i]); err != nil {
			return err
		}
	}

	clients := []domain.Client{
		{CompanyName: "SunPeak Energy", ContactPerson: "Laura Bennett", Email: "laura@sunpeak.com", Phone: "555-0142", Status: domain.ClientActive},
		{CompanyName: "GreenGrid Solutions", ContactPerson: "Mark Osei", Email: "mark@greengrid.io", Status: domain.ClientActive, Notes: "Prefers email contact"},
		{CompanyName: "Helios Homes", ContactPerson: "Dana Whitfield", Email: "dana@helioshomes.com", Phone: "555-0178", Status: domain.ClientInactive},
	}
	for i := range clients {
		clients[i].ID = ksuid.New().String()
		clients[i].CreatedAt = now
		if err := s.Clients.Create(ctx, &clients[i]); err != nil {
			return err
		}
	}

	projects := []domain.Project{
		{Name: "Rooftop array — SunPeak HQ", Status: domain.ProjectCompleted, ClientID: clients[0].ID},
		{Name: "Battery retrofit — GreenGrid depot", Status: domain.ProjectNew, ClientID: clients[1].ID},
		{Name: "Community solar phase 2", Status: domain.ProjectHold},
		{Name: "Helios Homes pilot", Status: domain.ProjectRevision, ClientID: clients[2].ID},
	}
	for i := range projects {
		projects[i].ID = ksuid.New().String()
		projects[i].CreatedAt = now
		if err := s.Projects.Create(ctx, &projects[i]); err != nil {
			return err
		}
	}

	comments := []domain.Comment{
		{Author: "Laura Bennett", Company: "SunPeak Energy", Text: "Install crew was fast and tidy. Panels look great."},
		{Author: "Mark Osei", Company: "GreenGrid Solutions", Text: "Waiting on the revised battery quote."},
	}
	for i, c := range comments {
		c.ID = ksuid.New().String()
		// Stagger so the descending order is deterministic.
		c.CreatedAt = now.Add(time.Duration(i) * time.Second)
		if err := s.Comments.Create(ctx, &c); err != nil {
			return err
		}
	}

	admin := &domain.User{ID: ksuid.New().String(), Username: "admin", Password: "admin"}
	return s.Users.Create(ctx, admin)
}
