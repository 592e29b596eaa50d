package users

import "time"

type SyncUserRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=256"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	UID         string    `json:"uid"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	PhotoURL    string    `json:"photo_url"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	LastLogin   time.Time `json:"last_login"`
}
