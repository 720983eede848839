package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/toy-store/internal/domain"
	apperrors "github.com/spec-kit/toy-store/pkg/util"
)

func newGuardedApp(tm *TokenManager) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Message})
		}
		return nil
	})

	m := NewAuthMiddleware(tm)
	app.Get("/protected", m.Handle, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusInternalServerError, "identity missing")
		}
		return c.JSON(fiber.Map{"id": identity.ID})
	})
	return app
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := newGuardedApp(NewTokenManager("test-secret", 60))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app := newGuardedApp(NewTokenManager("test-secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareNonBearerScheme(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	app := newGuardedApp(tm)

	token, _, err := tm.Issue("user-1", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareBindsIdentity(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	app := newGuardedApp(tm)

	token, _, err := tm.Issue("user-1", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
