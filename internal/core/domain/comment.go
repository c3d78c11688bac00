package domain

import "time"

// Comment is a piece of client feedback shown on the dashboard,
// newest first.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Company   string    `json:"company,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
