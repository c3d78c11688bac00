package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prootly/admin-api/internal/core/ports"
)

// errorResponse is the error envelope written directly by handlers.
// It matches the shape produced by the central HTTP error handler.
type errorResponse struct {
	Message string `json:"message"`
}

// EmployeeHandler handles HTTP requests for the employee directory.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type createEmployeeRequest struct {
	Name         string `json:"name"         validate:"required"`
	Email        string `json:"email"        validate:"required,email"`
	Role         string `json:"role"         validate:"required"`
	Status       string `json:"status"       validate:"omitempty,oneof=active inactive"`
	ProfileImage string `json:"profileImage"`
}

// updateEmployeeRequest is a partial update: only supplied fields are
// validated and applied.
type updateEmployeeRequest struct {
	Name         *string `json:"name"         validate:"omitempty,min=1"`
	Email        *string `json:"email"        validate:"omitempty,email"`
	Role         *string `json:"role"         validate:"omitempty,min=1"`
	Status       *string `json:"status"       validate:"omitempty,oneof=active inactive"`
	ProfileImage *string `json:"profileImage"`
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Search handles GET /api/employees/search?q=<substring>.
// The q parameter is required; an empty result set is a 200, not an error.
func (h *EmployeeHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "query parameter q is required"})
	}

	employees, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	employee, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Status:       req.Status,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// Update handles PUT /api/employees/:id.
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	employee, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEmployeeInput{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Status:       req.Status,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	removed, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !removed {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "employee not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
