package activityHandler

import (
	activityService "ProjectInkwell/internal/api/activity/service"
	"ProjectInkwell/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ActivitiesHandler struct {
	log             *logrus.Logger
	middleware      middleware.Middleware
	activityService activityService.IActivityService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	as activityService.IActivityService,
) *ActivitiesHandler {
	return &ActivitiesHandler{
		log:             log,
		middleware:      middleware,
		activityService: as,
	}
}

func (h *ActivitiesHandler) Start(srv fiber.Router) {
	activities := srv.Group("/activities")

	// Scoped to the caller's own uid, never a query parameter
	activities.Get("", h.middleware.NewIdentityMiddleware, h.GetActivities)
}
