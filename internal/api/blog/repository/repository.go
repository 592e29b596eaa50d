package blogRepository

import (
	"ProjectInkwell/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:    &blogsRepository{q: sqlExecutor, log: r.log},
		Likes:    &likesRepository{q: sqlExecutor, log: r.log},
		Reviews:  &reviewsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		GetAllBlogs(ctx context.Context) ([]entity.Blog, error)
		GetBlogsByAuthorEmail(ctx context.Context, email string) ([]entity.Blog, error)
		UpdateBlog(ctx context.Context, blog entity.Blog) error
		ClearBlogImage(ctx context.Context, id string) error
		DeleteBlog(ctx context.Context, id string) error
	}

	Likes interface {
		AddLike(ctx context.Context, blogID, userID string) error
		IncrementLikes(ctx context.Context, blogID string) (int, error)
		ListUserIDs(ctx context.Context, blogID string) ([]string, error)
	}

	Reviews interface {
		CreateReview(ctx context.Context, review entity.Review) error
		ListByBlog(ctx context.Context, blogID string) ([]entity.Review, error)
		DeleteReview(ctx context.Context, blogID, reviewID string) error
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type likesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type reviewsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
