package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prootly/admin-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for client feedback comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	Author  string `json:"author"  validate:"required"`
	Company string `json:"company"`
	Text    string `json:"text"    validate:"required"`
}

// List handles GET /api/comments. Comments come back newest first.
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	comment, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		Author:  req.Author,
		Company: req.Company,
		Text:    req.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Delete(c echo.Context) error {
	removed, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !removed {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "comment not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
