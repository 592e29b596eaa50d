package blogHandler

import (
	blogs "ProjectInkwell/internal/api/blog"
	"ProjectInkwell/internal/entity"
	"ProjectInkwell/internal/middleware"
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type stubBlogsService struct {
	likeErr   error
	likes     int
	getErr    error
	deleteErr error
}

func (s *stubBlogsService) CreateBlog(_ context.Context, _ blogs.CreateBlogRequest, identity entity.Identity, _ *multipart.FileHeader) (string, error) {
	return "01HQZX5J8N3V2K9W4T6Y7B8C9D", nil
}

func (s *stubBlogsService) GetBlogByID(_ context.Context, id string) (blogs.BlogResponse, error) {
	if s.getErr != nil {
		return blogs.BlogResponse{}, s.getErr
	}
	return blogs.BlogResponse{ID: id, LikedUsers: []string{}}, nil
}

func (s *stubBlogsService) GetAllBlogs(_ context.Context) (*blogs.BlogListResponse, error) {
	return &blogs.BlogListResponse{Blogs: []blogs.BlogResponse{}}, nil
}

func (s *stubBlogsService) GetBlogsByAuthor(_ context.Context, _ string) (*blogs.BlogListResponse, error) {
	return &blogs.BlogListResponse{Blogs: []blogs.BlogResponse{}}, nil
}

func (s *stubBlogsService) UpdateBlog(_ context.Context, _ string, _ blogs.UpdateBlogRequest, _ entity.Identity, _ *multipart.FileHeader) error {
	return nil
}

func (s *stubBlogsService) UpdateBlogUnowned(_ context.Context, _ string, _ blogs.UpdateBlogRequest) error {
	return nil
}

func (s *stubBlogsService) DeleteBlog(_ context.Context, _ string, _ entity.Identity) error {
	return s.deleteErr
}

func (s *stubBlogsService) LikeBlog(_ context.Context, _ string, _ string) (int, error) {
	if s.likeErr != nil {
		return 0, s.likeErr
	}
	return s.likes, nil
}

func (s *stubBlogsService) AddReview(_ context.Context, id string, _ blogs.AddReviewRequest) (*blogs.ReviewListResponse, error) {
	return &blogs.ReviewListResponse{Reviews: []blogs.ReviewResponse{}}, nil
}

func (s *stubBlogsService) RemoveReview(_ context.Context, _, _ string) error {
	return nil
}

func newTestApp(service *stubBlogsService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := middleware.New(logger, middleware.Config{RequireAuth: false})
	h := New(logger, validator.New(), m, service)

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	h.Start(app.Group("/api/v1"))
	return app
}

func TestLikeBlogRouteMapsAlreadyLikedTo400(t *testing.T) {
	app := newTestApp(&stubBlogsService{likeErr: blogs.ErrAlreadyLiked})

	req := httptest.NewRequest("POST", "/api/v1/blogs/01HQZX5J8N3V2K9W4T6Y7B8C9D/like",
		bytes.NewBufferString(`{"user_id":"alice"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ALREADY_LIKED")
}

func TestLikeBlogRouteReturnsCount(t *testing.T) {
	app := newTestApp(&stubBlogsService{likes: 3})

	req := httptest.NewRequest("POST", "/api/v1/blogs/01HQZX5J8N3V2K9W4T6Y7B8C9D/like",
		bytes.NewBufferString(`{"user_id":"alice"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"likes":3`)
}

func TestGetBlogRouteMapsNotFoundTo404(t *testing.T) {
	app := newTestApp(&stubBlogsService{getErr: blogs.ErrBlogNotFound})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/blogs/01HQZX5J8N3V2K9W4T6Y7B8C9D", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteBlogRouteMapsOwnershipTo403(t *testing.T) {
	app := newTestApp(&stubBlogsService{deleteErr: blogs.ErrBlogNotOwned})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/blogs/01HQZX5J8N3V2K9W4T6Y7B8C9D", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateBlogRouteRequiresFields(t *testing.T) {
	app := newTestApp(&stubBlogsService{})

	form := bytes.NewBufferString("title=Only+Title")
	req := httptest.NewRequest("POST", "/api/v1/blogs/", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateBlogRouteReturnsID(t *testing.T) {
	app := newTestApp(&stubBlogsService{})

	form := bytes.NewBufferString("title=T&content=C&category=tech")
	req := httptest.NewRequest("POST", "/api/v1/blogs/", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "01HQZX5J8N3V2K9W4T6Y7B8C9D")
}
