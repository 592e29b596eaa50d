package blogService

import (
	blogs "ProjectInkwell/internal/api/blog"
	blogRepository "ProjectInkwell/internal/api/blog/repository"
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, identity entity.Identity, imageFile *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}

	var imageURL string
	if imageFile != nil {
		if err := s.validateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return "", err
		}

		uploadedURL, err := s.s3Client.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return "", blogs.ErrFailedToUpload
		}

		imageURL = uploadedURL
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return "", err
	}

	now := time.Now()

	// Author comes from the verified identity; anything the caller put in
	// the payload is discarded. Likes start at zero with an empty liked set.
	blog := entity.Blog{
		ID:          blogID,
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    imageURL,
		AuthorUID:   identity.UID,
		AuthorEmail: identity.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return "", blogs.ErrCreateBlog
	}

	message := fmt.Sprintf("Created blog %q", req.Title)
	if err := s.activities.Record(ctx, identity, entity.ActivityTypeCreate, message, blogID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to record create activity")
		return "", err
	}

	return blogID, nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.utils.IsValidULID(id) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Malformed blog id")
		return blogs.BlogResponse{}, blogs.ErrBlogNotFound
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.BlogResponse{}, err
	}

	return s.makeBlogResponse(ctx, repo, blog)
}

func (s *blogsService) GetAllBlogs(ctx context.Context) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blogsList, err := repo.Blogs.GetAllBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, err
	}

	return s.makeBlogListResponse(ctx, repo, blogsList)
}

func (s *blogsService) GetBlogsByAuthor(ctx context.Context, email string) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blogsList, err := repo.Blogs.GetBlogsByAuthorEmail(ctx, email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
			"error":      err.Error(),
		}).Error("Failed to get blogs by author")
		return nil, err
	}

	return s.makeBlogListResponse(ctx, repo, blogsList)
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, identity entity.Identity, imageFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existingBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return err
	}

	if existingBlog.AuthorEmail != identity.Email {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_author":  existingBlog.AuthorEmail,
			"request_user": identity.Email,
		}).Warn("User is not the author of the blog")
		return blogs.ErrBlogNotOwned
	}

	imageURL := ""

	if imageFile != nil {
		if err := s.validateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return err
		}

		uploadedURL, err := s.s3Client.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return blogs.ErrFailedToUpload
		}

		if existingBlog.ImageURL != "" {
			s.deleteStoredImage(requestID, existingBlog.ImageURL)
		}

		imageURL = uploadedURL
	} else if req.ImageURL != "" && req.ImageURL != "remove" {
		imageURL = req.ImageURL
	}

	// Shallow merge: empty fields keep their stored value, and author,
	// created_at, likes and reviews are never part of the update.
	blog := entity.Blog{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: imageURL,
	}

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.ErrUpdateBlog
	}

	if req.ImageURL == "remove" && imageFile == nil {
		if err := repo.Blogs.ClearBlogImage(ctx, id); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to clear blog image")
			return blogs.ErrUpdateBlog
		}
		if existingBlog.ImageURL != "" {
			s.deleteStoredImage(requestID, existingBlog.ImageURL)
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrUpdateBlog
	}

	return nil
}

// UpdateBlogUnowned is the administrative variant: same merge, no ownership
// check. It is wired to internal callers only, never to a public route.
func (s *blogsService) UpdateBlogUnowned(ctx context.Context, id string, req blogs.UpdateBlogRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	blog := entity.Blog{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.ErrUpdateBlog
	}

	return nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, id string, identity entity.Identity) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existingBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return err
	}

	if existingBlog.AuthorEmail != identity.Email {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_author":  existingBlog.AuthorEmail,
			"request_user": identity.Email,
		}).Warn("User is not the author of the blog")
		return blogs.ErrBlogNotOwned
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return blogs.ErrDeleteBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrDeleteBlog
	}

	if existingBlog.ImageURL != "" {
		s.deleteStoredImage(requestID, existingBlog.ImageURL)
	}

	return nil
}

func (s *blogsService) makeBlogListResponse(ctx context.Context, repo blogRepository.Client, blogsList []entity.Blog) (*blogs.BlogListResponse, error) {
	response := &blogs.BlogListResponse{
		Blogs: make([]blogs.BlogResponse, 0, len(blogsList)),
		Total: len(blogsList),
	}

	for _, blog := range blogsList {
		blogResponse, err := s.makeBlogResponse(ctx, repo, blog)
		if err != nil {
			return nil, err
		}
		response.Blogs = append(response.Blogs, blogResponse)
	}

	return response, nil
}

func (s *blogsService) makeBlogResponse(ctx context.Context, repo blogRepository.Client, blog entity.Blog) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	likedUsers, err := repo.Likes.ListUserIDs(ctx, blog.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blog.ID,
			"error":      err.Error(),
		}).Error("Failed to list liked users")
		return blogs.BlogResponse{}, err
	}

	reviewsList, err := repo.Reviews.ListByBlog(ctx, blog.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blog.ID,
			"error":      err.Error(),
		}).Error("Failed to list reviews")
		return blogs.BlogResponse{}, err
	}

	imageURL := blog.ImageURL
	if imageURL != "" {
		presignedURL, err := s.s3Client.PresignUrl(imageURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         blog.ID,
				"image_url":  imageURL,
				"error":      err.Error(),
			}).Warn("Failed to create presigned URL for image")
		} else {
			imageURL = presignedURL
		}
	}

	reviews := make([]blogs.ReviewResponse, 0, len(reviewsList))
	for _, review := range reviewsList {
		reviews = append(reviews, blogs.ReviewResponse{
			ID:        review.ID,
			UserID:    review.UserID,
			UserName:  review.UserName,
			UserImage: review.UserImage,
			Comment:   review.Comment,
			Rating:    review.Rating,
			Date:      review.CreatedAt,
		})
	}

	if likedUsers == nil {
		likedUsers = []string{}
	}

	return blogs.BlogResponse{
		ID:       blog.ID,
		Title:    blog.Title,
		Content:  blog.Content,
		Category: blog.Category,
		ImageURL: imageURL,
		Author: blogs.AuthorResponse{
			UID:   blog.AuthorUID,
			Email: blog.AuthorEmail,
		},
		Likes:      blog.Likes,
		LikedUsers: likedUsers,
		Reviews:    reviews,
		CreatedAt:  blog.CreatedAt,
		UpdatedAt:  blog.UpdatedAt,
	}, nil
}

func (s *blogsService) deleteStoredImage(requestID, imageURL string) {
	parts := strings.Split(imageURL, "/")
	if len(parts) == 0 {
		return
	}

	fileName := parts[len(parts)-1]
	if err := s.s3Client.DeleteFile(fileName); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"file_name":  fileName,
			"error":      err.Error(),
		}).Warn("Failed to delete stored image")
	}
}

func (s *blogsService) validateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return nil
	}

	maxSize := int64(5 * 1024 * 1024)
	if file.Size > maxSize {
		return blogs.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedExtensions := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}

	if !allowedExtensions[ext] {
		return blogs.ErrInvalidFileType
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return blogs.ErrInvalidFileType
	}

	return nil
}
