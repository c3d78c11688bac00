package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/prootly/admin-api/internal/core/domain"
	"github.com/prootly/admin-api/internal/core/ports"
)

const (
	employeesPath = "/api/employees"
	clientsPath   = "/api/clients"
	projectsPath  = "/api/projects"
	commentsPath  = "/api/comments"
)

// --- Employees ---

// EmployeePayload is the request body for employee create and update.
// Empty fields are omitted so partial updates only send what changed.
type EmployeePayload struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
	Status       string `json:"status,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := c.getJSON(ctx, employeesPath, nil, &employees)
	return employees, err
}

func (c *Client) SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := c.getJSON(ctx, employeesPath+"/search", url.Values{"q": {query}}, &employees)
	return employees, err
}

func (c *Client) CreateEmployee(ctx context.Context, payload EmployeePayload) (*domain.Employee, error) {
	var employee domain.Employee
	if err := c.send(ctx, http.MethodPost, employeesPath, payload, &employee, employeesPath); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, payload EmployeePayload) (*domain.Employee, error) {
	var employee domain.Employee
	if err := c.send(ctx, http.MethodPut, employeesPath+"/"+id, payload, &employee, employeesPath); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, employeesPath+"/"+id, nil, nil, employeesPath)
}

// --- Clients ---

type ClientPayload struct {
	CompanyName   string `json:"companyName,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Status        string `json:"status,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := c.getJSON(ctx, clientsPath, nil, &clients)
	return clients, err
}

func (c *Client) SearchClients(ctx context.Context, query string) ([]domain.Client, error) {
	var clients []domain.Client
	err := c.getJSON(ctx, clientsPath+"/search", url.Values{"q": {query}}, &clients)
	return clients, err
}

func (c *Client) CreateClient(ctx context.Context, payload ClientPayload) (*domain.Client, error) {
	var client domain.Client
	if err := c.send(ctx, http.MethodPost, clientsPath, payload, &client, clientsPath); err != nil {
		return nil, err
	}
	return &client, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, payload ClientPayload) (*domain.Client, error) {
	var client domain.Client
	if err := c.send(ctx, http.MethodPut, clientsPath+"/"+id, payload, &client, clientsPath); err != nil {
		return nil, err
	}
	return &client, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, clientsPath+"/"+id, nil, nil, clientsPath)
}

// --- Projects ---

type ProjectPayload struct {
	Name     string `json:"name,omitempty"`
	Status   string `json:"status,omitempty"`
	ClientID string `json:"clientId,omitempty"`
}

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := c.getJSON(ctx, projectsPath, nil, &projects)
	return projects, err
}

// ProjectStats fetches the status aggregate. The stats key shares the
// projects prefix, so any project mutation invalidates it too.
func (c *Client) ProjectStats(ctx context.Context) (*ports.ProjectStats, error) {
	var stats ports.ProjectStats
	if err := c.getJSON(ctx, projectsPath+"/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) CreateProject(ctx context.Context, payload ProjectPayload) (*domain.Project, error) {
	var project domain.Project
	if err := c.send(ctx, http.MethodPost, projectsPath, payload, &project, projectsPath); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, payload ProjectPayload) (*domain.Project, error) {
	var project domain.Project
	if err := c.send(ctx, http.MethodPut, projectsPath+"/"+id, payload, &project, projectsPath); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, projectsPath+"/"+id, nil, nil, projectsPath)
}

// --- Comments ---

type CommentPayload struct {
	Author  string `json:"author"`
	Company string `json:"company,omitempty"`
	Text    string `json:"text"`
}

func (c *Client) ListComments(ctx context.Context) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := c.getJSON(ctx, commentsPath, nil, &comments)
	return comments, err
}

func (c *Client) CreateComment(ctx context.Context, payload CommentPayload) (*domain.Comment, error) {
	var comment domain.Comment
	if err := c.send(ctx, http.MethodPost, commentsPath, payload, &comment, commentsPath); err != nil {
		return nil, err
	}
	return &comment, nil
}
