package activityHandler

import (
	"ProjectInkwell/internal/middleware"
	contextPkg "ProjectInkwell/pkg/context"
	"ProjectInkwell/pkg/handlerUtil"
	"ProjectInkwell/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *ActivitiesHandler) GetActivities(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get activities request")

	identity, err := middleware.GetIdentity(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	result, err := h.activityService.ListForUID(c, identity.UID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_activities")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}
