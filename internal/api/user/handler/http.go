package userHandler

import (
	userService "ProjectInkwell/internal/api/user/service"
	"ProjectInkwell/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UsersHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	userService userService.IUserService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	us userService.IUserService,
) *UsersHandler {
	return &UsersHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		userService: us,
	}
}

func (h *UsersHandler) Start(srv fiber.Router) {
	users := srv.Group("/users")

	users.Post("/", h.middleware.NewIdentityMiddleware, h.SyncUser)
	users.Get("/role", h.middleware.NewIdentityMiddleware, h.GetRole)
	users.Get("/profile", h.middleware.NewIdentityMiddleware, h.GetProfile)
}
