package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prootly/admin-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for the client directory.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type createClientRequest struct {
	CompanyName   string `json:"companyName"   validate:"required"`
	ContactPerson string `json:"contactPerson" validate:"required"`
	Email         string `json:"email"         validate:"required,email"`
	Phone         string `json:"phone"`
	Status        string `json:"status"        validate:"omitempty,oneof=active inactive"`
	Notes         string `json:"notes"`
}

type updateClientRequest struct {
	CompanyName   *string `json:"companyName"   validate:"omitempty,min=1"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,min=1"`
	Email         *string `json:"email"         validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Status        *string `json:"status"        validate:"omitempty,oneof=active inactive"`
	Notes         *string `json:"notes"`
}

func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "query parameter q is required"})
	}

	clients, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateClientInput{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c echo.Context) error {
	removed, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !removed {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "client not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
