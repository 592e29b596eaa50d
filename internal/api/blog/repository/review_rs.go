package blogRepository

import (
	blogs "ProjectInkwell/internal/api/blog"
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"time"
)

type ReviewDB struct {
	ID        sql.NullString `db:"id"`
	BlogID    sql.NullString `db:"blog_id"`
	UserID    sql.NullString `db:"user_id"`
	UserName  sql.NullString `db:"user_name"`
	UserImage sql.NullString `db:"user_image"`
	Comment   sql.NullString `db:"comment"`
	Rating    int            `db:"rating"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *reviewsRepository) CreateReview(ctx context.Context, review entity.Review) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         review.ID,
		"blog_id":    review.BlogID,
		"user_id":    review.UserID,
		"user_name":  review.UserName,
		"user_image": review.UserImage,
		"comment":    review.Comment,
		"rating":     review.Rating,
		"created_at": review.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateReview, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateReview named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    review.BlogID,
			}).Warn("CreateReview blog not found")
			return blogs.ErrBlogNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating review")
		return err
	}

	return nil
}

func (r *reviewsRepository) ListByBlog(ctx context.Context, blogID string) ([]entity.Review, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var reviewsList []ReviewDB

	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryListReviewsByBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByBlog named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &reviewsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByBlog execution err")
		return nil, err
	}

	var result []entity.Review
	for _, reviewDB := range reviewsList {
		result = append(result, r.makeReview(reviewDB))
	}

	return result, nil
}

func (r *reviewsRepository) DeleteReview(ctx context.Context, blogID, reviewID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":      reviewID,
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryDeleteReview, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReview named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReview execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReview rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"review_id":  reviewID,
		}).Warn("DeleteReview no rows affected")
		return blogs.ErrReviewNotFound
	}

	return nil
}

func (r *reviewsRepository) makeReview(review ReviewDB) entity.Review {
	return entity.Review{
		ID:        review.ID.String,
		BlogID:    review.BlogID.String,
		UserID:    review.UserID.String,
		UserName:  review.UserName.String,
		UserImage: review.UserImage.String,
		Comment:   review.Comment.String,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}
