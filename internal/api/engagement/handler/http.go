package engagementHandler

import (
	engagementService "ProjectInkwell/internal/api/engagement/service"
	"ProjectInkwell/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type EngagementHandler struct {
	log               *logrus.Logger
	middleware        middleware.Middleware
	engagementService engagementService.IEngagementService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	es engagementService.IEngagementService,
) *EngagementHandler {
	return &EngagementHandler{
		log:               log,
		middleware:        middleware,
		engagementService: es,
	}
}

func (h *EngagementHandler) Start(srv fiber.Router) {
	srv.Get("/reviews", h.GetAllReviews)
	srv.Get("/stats", h.middleware.NewIdentityMiddleware, h.GetStats)
}
