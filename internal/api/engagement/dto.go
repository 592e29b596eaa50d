package engagement

import "time"

type FeedReviewResponse struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blog_id"`
	BlogTitle string    `json:"blog_title"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserImage string    `json:"user_image"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	Date      time.Time `json:"date"`
}

type ReviewFeedResponse struct {
	Reviews []FeedReviewResponse `json:"reviews"`
	Total   int                  `json:"total"`
}

type MostLikedResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Likes int    `json:"likes"`
}

type StatsResponse struct {
	TotalBlogs int                `json:"total_blogs"`
	TotalUsers int                `json:"total_users"`
	MostLiked  *MostLikedResponse `json:"most_liked,omitempty"`
}
