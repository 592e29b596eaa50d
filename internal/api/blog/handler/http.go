package blogHandler

import (
	blogService "ProjectInkwell/internal/api/blog/service"
	"ProjectInkwell/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	// Create blog (requires auth, author forced from identity)
	blogs.Post("/", h.middleware.NewIdentityMiddleware, h.CreateBlog)

	// Public endpoints (no auth required)
	blogs.Get("", h.GetAllBlogs)
	blogs.Get("/author/:email", h.GetBlogsByAuthor)
	blogs.Get("/:id", h.GetBlogByID)

	// Update and delete (requires auth + ownership)
	blogs.Put("/:id", h.middleware.NewIdentityMiddleware, h.UpdateBlog)
	blogs.Delete("/:id", h.middleware.NewIdentityMiddleware, h.DeleteBlog)

	// Engagement
	blogs.Post("/:id/like", h.middleware.NewOptionalIdentityMiddleware, h.LikeBlog)
	blogs.Post("/:id/reviews", h.AddReview)
	blogs.Delete("/:id/reviews/:reviewId", h.RemoveReview)
}
