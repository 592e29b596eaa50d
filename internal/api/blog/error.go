package blogs

import "ProjectInkwell/pkg/response"

var (
	ErrBlogNotFound    = response.NewError(404, "blog not found")
	ErrReviewNotFound  = response.NewError(404, "review not found")
	ErrInvalidBlogID   = response.NewError(400, "invalid blog id")
	ErrAlreadyLiked    = response.NewError(400, "blog already liked by this user")
	ErrBlogNotOwned    = response.NewError(403, "blog does not belong to user")
	ErrCreateBlog      = response.NewError(500, "failed to create blog")
	ErrUpdateBlog      = response.NewError(500, "failed to update blog")
	ErrDeleteBlog      = response.NewError(500, "failed to delete blog")
	ErrLikeBlog        = response.NewError(500, "failed to like blog")
	ErrAddReview       = response.NewError(500, "failed to add review")
	ErrRemoveReview    = response.NewError(500, "failed to remove review")
	ErrInvalidFileType = response.NewError(400, "invalid file type")
	ErrFileTooLarge    = response.NewError(400, "file too large")
	ErrFailedToUpload  = response.NewError(500, "failed to upload file")
)
