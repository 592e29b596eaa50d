package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// RoleResolver looks up a caller's stored role by email. Implemented by the
// user service; unknown emails resolve to the default role.
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

type Config struct {
	// RequireAuth selects production behavior: a missing credential is
	// rejected. When false, requests without a credential resolve to the
	// development placeholder identity.
	RequireAuth bool
}

type Middleware interface {
	NewIdentityMiddleware(ctx *fiber.Ctx) error
	NewOptionalIdentityMiddleware(ctx *fiber.Ctx) error
	NewAdminMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
	SetRoleResolver(resolver RoleResolver)
}

type middleware struct {
	config              Config
	roles               RoleResolver
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, config Config) Middleware {
	return &middleware{
		config:              config,
		requestIDMiddleware: NewRequestIDMiddleware(),
		log:                 logger,
	}
}

func (m *middleware) SetRoleResolver(resolver RoleResolver) {
	m.roles = resolver
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
