package blogService

import (
	blogs "ProjectInkwell/internal/api/blog"
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

// LikeBlog adds userID to the blog's liked set and bumps the counter in one
// transaction. A second like from the same user is a client error, not a
// silent no-op: the engagement count must not be inflatable by retries.
func (s *blogsService) LikeBlog(ctx context.Context, id string, userID string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.utils.IsValidULID(id) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Malformed blog id")
		return 0, blogs.ErrBlogNotFound
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, err
	}
	defer repo.Rollback()

	if err := repo.Likes.AddLike(ctx, id, userID); err != nil {
		if errors.Is(err, blogs.ErrAlreadyLiked) || errors.Is(err, blogs.ErrBlogNotFound) {
			return 0, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to add like")
		return 0, blogs.ErrLikeBlog
	}

	likes, err := repo.Likes.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return 0, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to increment likes")
		return 0, blogs.ErrLikeBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, blogs.ErrLikeBlog
	}

	return likes, nil
}

func (s *blogsService) AddReview(ctx context.Context, id string, req blogs.AddReviewRequest) (*blogs.ReviewListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.utils.IsValidULID(id) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Malformed blog id")
		return nil, blogs.ErrInvalidBlogID
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	reviewID := req.ID
	if reviewID == "" {
		reviewID, err = s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate ULID")
			return nil, err
		}
	}

	review := entity.Review{
		ID:        reviewID,
		BlogID:    id,
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserImage: req.UserImage,
		Comment:   req.Comment,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
	}

	if err := repo.Reviews.CreateReview(ctx, review); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return nil, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to create review")
		return nil, blogs.ErrAddReview
	}

	reviewsList, err := repo.Reviews.ListByBlog(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to list reviews")
		return nil, blogs.ErrAddReview
	}

	response := &blogs.ReviewListResponse{
		Reviews: make([]blogs.ReviewResponse, 0, len(reviewsList)),
	}
	for _, item := range reviewsList {
		response.Reviews = append(response.Reviews, blogs.ReviewResponse{
			ID:        item.ID,
			UserID:    item.UserID,
			UserName:  item.UserName,
			UserImage: item.UserImage,
			Comment:   item.Comment,
			Rating:    item.Rating,
			Date:      item.CreatedAt,
		})
	}

	return response, nil
}

// RemoveReview distinguishes a missing blog from a missing review: the blog
// lookup runs first so the caller can tell which identity was wrong.
func (s *blogsService) RemoveReview(ctx context.Context, blogID, reviewID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.utils.IsValidULID(blogID) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blogID,
		}).Warn("Malformed blog id")
		return blogs.ErrBlogNotFound
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Blogs.GetBlogByID(ctx, blogID); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         blogID,
			}).Warn("Blog not found")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blogID,
			"error":      err.Error(),
		}).Error("Failed to get blog")
		return err
	}

	if err := repo.Reviews.DeleteReview(ctx, blogID, reviewID); err != nil {
		if errors.Is(err, blogs.ErrReviewNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blogID,
				"review_id":  reviewID,
			}).Warn("Review not found")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"review_id":  reviewID,
			"error":      err.Error(),
		}).Error("Failed to delete review")
		return blogs.ErrRemoveReview
	}

	return nil
}
