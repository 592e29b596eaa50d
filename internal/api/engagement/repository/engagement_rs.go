package engagementRepository

import (
	contextPkg "ProjectInkwell/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/sirupsen/logrus"
)

type FeedReviewRow struct {
	ID        sql.NullString `db:"id"`
	BlogID    sql.NullString `db:"blog_id"`
	BlogTitle sql.NullString `db:"blog_title"`
	UserID    sql.NullString `db:"user_id"`
	UserName  sql.NullString `db:"user_name"`
	UserImage sql.NullString `db:"user_image"`
	Comment   sql.NullString `db:"comment"`
	Rating    sql.NullInt64  `db:"rating"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

type MostLikedRow struct {
	ID    sql.NullString `db:"id"`
	Title sql.NullString `db:"title"`
	Likes int            `db:"likes"`
}

func (r *engagementRepository) ListAllReviews(ctx context.Context) ([]FeedReviewRow, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []FeedReviewRow

	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryListAllReviews)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing all reviews")
		return nil, err
	}

	return rows, nil
}

func (r *engagementRepository) CountBlogs(ctx context.Context) (int, error) {
	return r.count(ctx, queryCountBlogs, "blogs")
}

func (r *engagementRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, queryCountUsers, "users")
}

func (r *engagementRepository) count(ctx context.Context, query, table string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var total int

	if err := r.q.QueryRowxContext(ctx, r.q.Rebind(query)).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"table":      table,
			"error":      err.Error(),
		}).Error("Database error when counting rows")
		return 0, err
	}

	return total, nil
}

// MostLikedBlog returns the highest-liked post. The bool is false when the
// store holds no posts at all.
func (r *engagementRepository) MostLikedBlog(ctx context.Context) (MostLikedRow, bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row MostLikedRow

	if err := r.q.QueryRowxContext(ctx, r.q.Rebind(queryMostLikedBlog)).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MostLikedRow{}, false, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when finding most liked blog")
		return MostLikedRow{}, false, err
	}

	return row, true, nil
}
