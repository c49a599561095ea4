package middleware

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"campus-portal/internal/core/domain"
	"campus-portal/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp(tokens *token.Service) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(tokens), func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)
		return c.SendString(fmt.Sprintf("user:%d", userID))
	})
	app.Get("/staff", AuthMiddleware(tokens), StaffOnly(), func(c *fiber.Ctx) error {
		return c.SendString("staff")
	})
	return app
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	tokens := token.NewService("test-secret", 60)
	app := newGuardedApp(tokens)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	t.Parallel()

	tokens := token.NewService("test-secret", 60)
	app := newGuardedApp(tokens)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	tokens := token.NewService("test-secret", 60)
	app := newGuardedApp(tokens)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongKey(t *testing.T) {
	t.Parallel()

	tokens := token.NewService("test-secret", 60)
	app := newGuardedApp(tokens)

	foreign := token.NewService("other-secret", 60)
	tok, err := foreign.Issue(1, "a@x.com", domain.RoleStudent)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tokens := token.NewService("test-secret", 60)
	app := newGuardedApp(tokens)

	tok, err := tokens.Issue(7, "a@x.com", domain.RoleStudent)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestStaffOnly_ForbidsStudents(t *testing.T) {
	t.Parallel()

	tokens := token.NewService("test-secret", 60)
	app := newGuardedApp(tokens)

	studentTok, err := tokens.Issue(1, "a@x.com", domain.RoleStudent)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+studentTok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	adminTok, err := tokens.Issue(2, "c@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+adminTok)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
