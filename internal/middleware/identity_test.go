package middleware

import (
	"ProjectInkwell/internal/entity"
	"ProjectInkwell/pkg/tokenverify"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func newTestMiddleware(requireAuth bool) Middleware {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, Config{RequireAuth: requireAuth})
}

func identityEchoApp(m Middleware) *fiber.App {
	app := fiber.New()
	app.Get("/protected", m.NewIdentityMiddleware, func(ctx *fiber.Ctx) error {
		identity, err := GetIdentity(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(fiber.Map{"uid": identity.UID})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestIdentityMiddlewareDevFallback(t *testing.T) {
	app := identityEchoApp(newTestMiddleware(false))

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "devUser")
}

func TestIdentityMiddlewareRequiresCredentialInProduction(t *testing.T) {
	app := identityEchoApp(newTestMiddleware(true))

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestIdentityMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv(tokenverify.SecretEnvKey, "test-secret")

	app := identityEchoApp(newTestMiddleware(true))

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"uid":   "user-42",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "user-42")
}

func TestIdentityMiddlewareRejectsBadToken(t *testing.T) {
	t.Setenv(tokenverify.SecretEnvKey, "test-secret")

	app := identityEchoApp(newTestMiddleware(false))

	signed := signToken(t, "wrong-secret", jwt.MapClaims{
		"uid":   "user-42",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	// A supplied credential that fails verification is rejected even when
	// the deployment would otherwise fall back to the dev identity.
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalIdentityMiddleware(t *testing.T) {
	t.Setenv(tokenverify.SecretEnvKey, "test-secret")

	m := newTestMiddleware(true)
	app := fiber.New()
	app.Get("/open", m.NewOptionalIdentityMiddleware, func(ctx *fiber.Ctx) error {
		identity, err := GetIdentity(ctx)
		if err != nil {
			return ctx.JSON(fiber.Map{"uid": ""})
		}
		return ctx.JSON(fiber.Map{"uid": identity.UID})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

type staticRoles map[string]string

func (r staticRoles) RoleByEmail(_ context.Context, email string) (string, error) {
	role, ok := r[email]
	if !ok {
		return entity.RoleUser, nil
	}
	return role, nil
}

func adminEchoApp(m Middleware) *fiber.App {
	app := fiber.New()
	app.Get("/admin", m.NewIdentityMiddleware, m.NewAdminMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAdminMiddlewareGating(t *testing.T) {
	t.Setenv(tokenverify.SecretEnvKey, "test-secret")

	m := newTestMiddleware(true)
	m.SetRoleResolver(staticRoles{"admin@example.com": entity.RoleAdmin})
	app := adminEchoApp(m)

	adminToken := signToken(t, "test-secret", jwt.MapClaims{
		"uid":   "admin-1",
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	userToken := signToken(t, "test-secret", jwt.MapClaims{
		"uid":   "user-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// 403 and 401 stay distinct: no credential at all is unauthenticated
	resp, err = app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminMiddlewareWithoutResolver(t *testing.T) {
	m := newTestMiddleware(false)
	app := adminEchoApp(m)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
