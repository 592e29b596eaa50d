package activities

import "time"

type ActivityResponse struct {
	ID        string    `json:"id"`
	UserUID   string    `json:"user_uid"`
	UserEmail string    `json:"user_email"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	BlogID    string    `json:"blog_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int                `json:"total"`
}
