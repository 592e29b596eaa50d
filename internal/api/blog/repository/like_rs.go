package blogRepository

import (
	blogs "ProjectInkwell/internal/api/blog"
	contextPkg "ProjectInkwell/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"time"
)

// AddLike records the user in the blog's liked set. The primary key on
// (blog_id, user_id) is what makes a repeated like from the same user fail
// instead of double-counting.
func (r *likesRepository) AddLike(ctx context.Context, blogID, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"blog_id":    blogID,
		"user_id":    userID,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryAddLike, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddLike named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"blog_id":    blogID,
					"user_id":    userID,
				}).Warn("Blog already liked by user")
				return blogs.ErrAlreadyLiked
			case "23503":
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"blog_id":    blogID,
				}).Warn("AddLike blog not found")
				return blogs.ErrBlogNotFound
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when adding like")
		return err
	}

	return nil
}

// IncrementLikes bumps the denormalized counter and returns the new count.
// It runs in the same transaction as AddLike so the counter and the
// membership set cannot drift apart.
func (r *likesRepository) IncrementLikes(ctx context.Context, blogID string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": blogID,
	}

	query, args, err := sqlx.Named(queryIncrementLikes, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementLikes named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var likes int
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&likes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blogID,
			}).Warn("IncrementLikes blog not found")
			return 0, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementLikes execution err")
		return 0, err
	}

	return likes, nil
}

func (r *likesRepository) ListUserIDs(ctx context.Context, blogID string) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryListLikeUserIDs, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListUserIDs named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var userIDs []string
	if err := r.q.SelectContext(ctx, &userIDs, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListUserIDs execution err")
		return nil, err
	}

	return userIDs, nil
}
