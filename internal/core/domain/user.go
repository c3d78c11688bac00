package domain

// User is a dashboard login account. Username is unique across the
// collection, enforced at creation. The password is stored as provided;
// this service performs no authentication.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
