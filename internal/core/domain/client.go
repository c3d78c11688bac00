package domain

import "time"

// ClientStatus represents whether a client account is active.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// Client is a customer company in the client directory.
type Client struct {
	ID            string       `json:"id"`
	CompanyName   string       `json:"companyName"`
	ContactPerson string       `json:"contactPerson"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone,omitempty"`
	Status        ClientStatus `json:"status"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}
