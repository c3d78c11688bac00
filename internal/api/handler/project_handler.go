package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prootly/admin-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for projects, including the
// status-stats projection used by the dashboard donut chart.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Name     string `json:"name"     validate:"required"`
	Status   string `json:"status"   validate:"omitempty,oneof=completed hold new revision"`
	ClientID string `json:"clientId"`
}

type updateProjectRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Status   *string `json:"status"   validate:"omitempty,oneof=completed hold new revision"`
	ClientID *string `json:"clientId"`
}

func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Stats handles GET /api/projects/stats. The aggregate is recomputed on
// every call.
func (h *ProjectHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:     req.Name,
		Status:   req.Status,
		ClientID: req.ClientID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		Name:     req.Name,
		Status:   req.Status,
		ClientID: req.ClientID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	removed, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !removed {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "project not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
