package middleware

import (
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewAdminMiddleware gates admin-only resources. It runs after the identity
// gate; a role violation is a 403, distinct from the gate's 401. The role is
// read once per request and not re-checked afterwards.
func (m *middleware) NewAdminMiddleware(ctx *fiber.Ctx) error {
	identity, err := GetIdentity(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
			"code":  "UNAUTHENTICATED",
		})
	}

	if m.roles == nil {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
		}).Error("Role resolver is not configured")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An unexpected error occurred",
		})
	}

	c := contextPkg.FromFiberCtx(ctx)

	role, err := m.roles.RoleByEmail(c, identity.Email)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
			"email":      identity.Email,
			"error":      err.Error(),
		}).Error("Failed to resolve caller role")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve caller role",
		})
	}

	if role != entity.RoleAdmin {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
			"email":      identity.Email,
			"role":       role,
		}).Warn("Caller is not an admin")
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin role required",
			"code":  "FORBIDDEN",
		})
	}

	return ctx.Next()
}
