package blogs

import "time"

type CreateBlogRequest struct {
	Title    string `json:"title" form:"title" validate:"required,min=3,max=256"`
	Content  string `json:"content" form:"content" validate:"required"`
	Category string `json:"category" form:"category" validate:"required"`
}

type UpdateBlogRequest struct {
	Title    string `json:"title" form:"title" validate:"omitempty,min=3,max=256"`
	Content  string `json:"content" form:"content" validate:"omitempty"`
	Category string `json:"category" form:"category" validate:"omitempty"`
	ImageURL string `json:"image_url" form:"image_url" validate:"omitempty"`
}

type LikeBlogRequest struct {
	UserID string `json:"user_id" validate:"omitempty,max=128"`
}

type AddReviewRequest struct {
	ID        string `json:"id" validate:"omitempty,max=64"`
	UserID    string `json:"user_id" validate:"omitempty,max=128"`
	UserName  string `json:"user_name" validate:"omitempty,max=256"`
	UserImage string `json:"user_image" validate:"omitempty,url"`
	Comment   string `json:"comment" validate:"required"`
	Rating    int    `json:"rating" validate:"omitempty,min=0,max=5"`
}

type AuthorResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserImage string    `json:"user_image"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	Date      time.Time `json:"date"`
}

type BlogResponse struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	Category   string           `json:"category"`
	ImageURL   string           `json:"image_url"`
	Author     AuthorResponse   `json:"author"`
	Likes      int              `json:"likes"`
	LikedUsers []string         `json:"liked_users"`
	Reviews    []ReviewResponse `json:"reviews"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
	Total int            `json:"total"`
}

type CreateBlogResponse struct {
	ID string `json:"id"`
}

type LikeBlogResponse struct {
	Likes int `json:"likes"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}
