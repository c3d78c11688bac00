package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prootly/admin-api/internal/infrastructure/db/memory"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready. The store is process-local
// memory so there are no external dependencies to probe; readiness reports
// the current row count per collection instead.
type ReadinessHandler struct {
	store *memory.Store
}

func NewReadinessHandler(store *memory.Store) *ReadinessHandler {
	return &ReadinessHandler{store: store}
}

type readinessResponse struct {
	Status string         `json:"status"`
	Rows   map[string]int `json:"rows"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()
	rows := make(map[string]int)

	if employees, err := h.store.Employees.List(ctx); err == nil {
		rows["employees"] = len(employees)
	}
	if clients, err := h.store.Clients.List(ctx); err == nil {
		rows["clients"] = len(clients)
	}
	if projects, err := h.store.Projects.List(ctx); err == nil {
		rows["projects"] = len(projects)
	}
	if comments, err := h.store.Comments.List(ctx); err == nil {
		rows["comments"] = len(comments)
	}
	if users, err := h.store.Users.List(ctx); err == nil {
		rows["users"] = len(users)
	}

	return c.JSON(http.StatusOK, readinessResponse{Status: "ok", Rows: rows})
}
