package outreachHandler

import (
	outreachService "ProjectInkwell/internal/api/outreach/service"
	"ProjectInkwell/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OutreachHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	outreachService outreachService.IOutreachService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	os outreachService.IOutreachService,
) *OutreachHandler {
	return &OutreachHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		outreachService: os,
	}
}

func (h *OutreachHandler) Start(srv fiber.Router) {
	subscribers := srv.Group("/subscribers")

	// Anyone can subscribe; reading and pruning the list is admin only
	subscribers.Post("/", h.Subscribe)
	subscribers.Get("", h.middleware.NewIdentityMiddleware, h.middleware.NewAdminMiddleware, h.GetSubscribers)
	subscribers.Delete("/:email", h.middleware.NewIdentityMiddleware, h.middleware.NewAdminMiddleware, h.DeleteSubscriber)

	contacts := srv.Group("/contacts")

	contacts.Post("/", h.SubmitContact)
	contacts.Get("", h.middleware.NewIdentityMiddleware, h.middleware.NewAdminMiddleware, h.GetContacts)
	contacts.Delete("/:id", h.middleware.NewIdentityMiddleware, h.middleware.NewAdminMiddleware, h.DeleteContact)
}
