package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/prootly/admin-api/internal/api/handler"
	"github.com/prootly/admin-api/internal/core/service"
	"github.com/prootly/admin-api/internal/infrastructure/db/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The store is created once at process start and injected here; nothing
// else holds entity state.
func NewRouter(store *memory.Store, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("prootly"))

	// --- Dependencies ---
	employeeHandler := handler.NewEmployeeHandler(service.NewEmployeeService(store.Employees, log))
	clientHandler := handler.NewClientHandler(service.NewClientService(store.Clients, log))
	projectHandler := handler.NewProjectHandler(service.NewProjectService(store.Projects, log))
	commentHandler := handler.NewCommentHandler(service.NewCommentService(store.Comments, log))
	userHandler := handler.NewUserHandler(service.NewUserService(store.Users, log))
	newProjectsHandler := handler.NewNewProjectsHandler()

	// --- Employee directory ---
	e.GET("/api/employees", employeeHandler.List)
	e.GET("/api/employees/search", employeeHandler.Search)
	e.POST("/api/employees", employeeHandler.Create)
	e.PUT("/api/employees/:id", employeeHandler.Update)
	e.DELETE("/api/employees/:id", employeeHandler.Delete)

	// --- Client directory ---
	e.GET("/api/clients", clientHandler.List)
	e.GET("/api/clients/search", clientHandler.Search)
	e.POST("/api/clients", clientHandler.Create)
	e.PUT("/api/clients/:id", clientHandler.Update)
	e.DELETE("/api/clients/:id", clientHandler.Delete)

	// --- Projects ---
	// /stats before /:id so the literal segment wins.
	e.GET("/api/projects", projectHandler.List)
	e.GET("/api/projects/stats", projectHandler.Stats)
	e.POST("/api/projects", projectHandler.Create)
	e.PUT("/api/projects/:id", projectHandler.Update)
	e.DELETE("/api/projects/:id", projectHandler.Delete)

	// --- Comments ---
	e.GET("/api/comments", commentHandler.List)
	e.POST("/api/comments", commentHandler.Create)
	e.DELETE("/api/comments/:id", commentHandler.Delete)

	// --- Users ---
	e.GET("/api/users", userHandler.List)
	e.POST("/api/users", userHandler.Create)

	// --- Secondary table mock dataset ---
	e.GET("/api/new-projects-data", newProjectsHandler.Get)

	// --- Health probes + metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
