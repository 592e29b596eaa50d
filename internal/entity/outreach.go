package entity

import "time"

type Subscriber struct {
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type Contact struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
