package entity

import "time"

const ActivityTypeCreate = "CREATE"

// Activity is one append-only audit record. UserUID and UserEmail are a
// snapshot of the caller at event time, not a reference to the users table.
type Activity struct {
	ID        string    `db:"id"`
	UserUID   string    `db:"user_uid"`
	UserEmail string    `db:"user_email"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	BlogID    string    `db:"blog_id"`
	CreatedAt time.Time `db:"created_at"`
}
