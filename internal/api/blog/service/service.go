package blogService

import (
	blogs "ProjectInkwell/internal/api/blog"
	blogRepository "ProjectInkwell/internal/api/blog/repository"
	"ProjectInkwell/internal/entity"
	"ProjectInkwell/pkg/s3"
	"ProjectInkwell/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
	"mime/multipart"
)

// ActivityRecorder is the slice of the audit-log service the blog module
// needs: successful creations append one record.
type ActivityRecorder interface {
	Record(ctx context.Context, identity entity.Identity, activityType, message, blogID string) error
}

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, identity entity.Identity, imageFile *multipart.FileHeader) (string, error)
	GetBlogByID(ctx context.Context, id string) (blogs.BlogResponse, error)
	GetAllBlogs(ctx context.Context) (*blogs.BlogListResponse, error)
	GetBlogsByAuthor(ctx context.Context, email string) (*blogs.BlogListResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, identity entity.Identity, imageFile *multipart.FileHeader) error
	UpdateBlogUnowned(ctx context.Context, id string, req blogs.UpdateBlogRequest) error
	DeleteBlog(ctx context.Context, id string, identity entity.Identity) error
	LikeBlog(ctx context.Context, id string, userID string) (int, error)
	AddReview(ctx context.Context, id string, req blogs.AddReviewRequest) (*blogs.ReviewListResponse, error)
	RemoveReview(ctx context.Context, blogID, reviewID string) error
}

type blogsService struct {
	log        *logrus.Logger
	blogsRepo  blogRepository.Repository
	s3Client   s3.ItfS3
	utils      utils.IUtils
	activities ActivityRecorder
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
	activities ActivityRecorder,
) IBlogsService {
	return &blogsService{
		log:        log,
		blogsRepo:  blogsRepo,
		s3Client:   s3Client,
		utils:      utils,
		activities: activities,
	}
}
