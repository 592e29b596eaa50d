package entity

import "time"

type Blog struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Category    string    `db:"category"`
	ImageURL    string    `db:"image_url"`
	AuthorUID   string    `db:"author_uid"`
	AuthorEmail string    `db:"author_email"`
	Likes       int       `db:"likes"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Review struct {
	ID        string    `db:"id"`
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	UserName  string    `db:"user_name"`
	UserImage string    `db:"user_image"`
	Comment   string    `db:"comment"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}
