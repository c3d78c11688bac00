package domain

import "time"

// EmployeeStatus represents whether an employee is currently on staff.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// Employee is a member of staff shown in the employee directory.
type Employee struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	Status       EmployeeStatus `json:"status"`
	ProfileImage string         `json:"profileImage,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}
