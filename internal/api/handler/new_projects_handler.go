package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// newProjectRow is one row of the fixed dataset behind the secondary
// "new projects" table view. It is unrelated to the Project entity.
type newProjectRow struct {
	ID        int    `json:"id"`
	Customer  string `json:"customer"`
	Address   string `json:"address"`
	State     string `json:"state"`
	Installer string `json:"installer"`
	Stage     string `json:"stage"`
	Received  string `json:"received"`
}

var newProjectsData = []newProjectRow{
	{1, "Riverside Apartments", "482 Riverside Dr", "CA", "SolarWorks West", "site survey", "2025-08-04"},
	{2, "Oakfield Farm", "17 Oakfield Ln", "TX", "BrightPath Install", "permitting", "2025-08-09"},
	{3, "Harbor Logistics", "9 Port Access Rd", "WA", "SolarWorks West", "design review", "2025-08-15"},
	{4, "Maple Grove School", "230 Maple Grove Ave", "OR", "Evergreen Solar", "contract sent", "2025-08-21"},
	{5, "Cedar Ridge HOA", "55 Cedar Ridge Ct", "CO", "BrightPath Install", "site survey", "2025-08-27"},
}

// NewProjectsHandler serves the static mock dataset at GET /api/new-projects-data.
type NewProjectsHandler struct{}

func NewNewProjectsHandler() *NewProjectsHandler {
	return &NewProjectsHandler{}
}

func (h *NewProjectsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, newProjectsData)
}
