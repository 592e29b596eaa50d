package middleware

import (
	"ProjectInkwell/internal/entity"
	"ProjectInkwell/pkg/tokenverify"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const IdentityKey = "identity"

// DevIdentity is the stand-in caller used when no credential is supplied and
// the deployment does not require auth.
var DevIdentity = entity.Identity{
	UID:   "devUser",
	Email: "dev@local",
	Name:  "Dev User",
}

// GetIdentity returns the identity the gate resolved for this request.
func GetIdentity(ctx *fiber.Ctx) (entity.Identity, error) {
	identity, ok := ctx.Locals(IdentityKey).(entity.Identity)
	if !ok || identity.UID == "" {
		return entity.Identity{}, fiber.ErrUnauthorized
	}
	return identity, nil
}

// NewIdentityMiddleware gates routes that need an authenticated caller. One
// verification attempt per request, no retry, no result caching.
func (m *middleware) NewIdentityMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	if authHeader == "" {
		if !m.config.RequireAuth {
			m.log.WithFields(logrus.Fields{
				"request_id": m.GetRequestID(ctx),
				"path":       ctx.Path(),
			}).Debug("No credential supplied, using development identity")
			ctx.Locals(IdentityKey, DevIdentity)
			return ctx.Next()
		}

		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
		}).Warn("Authorization header is missing")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
			"code":  "UNAUTHENTICATED",
		})
	}

	identity, err := tokenverify.Verify(authHeader)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
			"code":  "UNAUTHENTICATED",
		})
	}

	ctx.Locals(IdentityKey, identity)

	return ctx.Next()
}

// NewOptionalIdentityMiddleware resolves the caller when a credential is
// present but lets anonymous requests through. A supplied credential that
// fails verification is still rejected.
func (m *middleware) NewOptionalIdentityMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return ctx.Next()
	}

	identity, err := tokenverify.Verify(authHeader)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
			"code":  "UNAUTHENTICATED",
		})
	}

	ctx.Locals(IdentityKey, identity)

	return ctx.Next()
}
