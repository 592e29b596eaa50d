package outreach

import "time"

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SubscriberResponse struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscriberListResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
	Total       int                  `json:"total"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=256"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int               `json:"total"`
}
