package entity

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID          string    `db:"id"`
	UID         string    `db:"uid"`
	DisplayName string    `db:"display_name"`
	Email       string    `db:"email"`
	PhotoURL    string    `db:"photo_url"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
	LastLogin   time.Time `db:"last_login"`
}

// Identity is the resolved caller from a verified bearer token. It is what
// the identity middleware stores in the request locals.
type Identity struct {
	UID   string
	Email string
	Name  string
	Photo string
}
