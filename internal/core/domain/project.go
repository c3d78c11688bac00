package domain

import "time"

// ProjectStatus is the lifecycle state of an installation project.
type ProjectStatus string

const (
	ProjectCompleted ProjectStatus = "completed"
	ProjectHold      ProjectStatus = "hold"
	ProjectNew       ProjectStatus = "new"
	ProjectRevision  ProjectStatus = "revision"
)

// ProjectStatuses lists every valid status in reporting order.
var ProjectStatuses = []ProjectStatus{ProjectCompleted, ProjectHold, ProjectNew, ProjectRevision}

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Project is a renewable-energy installation tracked on the dashboard.
// ClientID is a weak reference: it names a Client without owning it and
// is not checked against the client collection.
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Status    ProjectStatus `json:"status"`
	ClientID  string        `json:"clientId,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}
