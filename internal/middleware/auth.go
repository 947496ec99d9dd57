package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	// AdminCookieName carries the shared admin secret.
	AdminCookieName = "admin-auth"
	// AdminLoginPath is reachable without the cookie.
	AdminLoginPath = "/admin/login"

	adminPrefix = "/admin"
)

// IsAdminAuthenticated reports whether the request cookie equals secret.
// An empty secret never authenticates.
func IsAdminAuthenticated(c *fiber.Ctx, secret string) bool {
	return secret != "" && c.Cookies(AdminCookieName) == secret
}

func isAdminPage(path string) bool {
	return path == adminPrefix || strings.HasPrefix(path, adminPrefix+"/")
}

// AdminGate protects /admin pages. Unauthenticated requests are redirected to
// the login page; the login page itself always passes through.
func AdminGate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Routing is case-insensitive, so the gate must be too.
		path := strings.ToLower(strings.TrimSuffix(c.Path(), "/"))
		if path == "" || !isAdminPage(path) {
			return c.Next()
		}

		if IsAdminAuthenticated(c, secret) || path == AdminLoginPath {
			return c.Next()
		}

		return c.Redirect(AdminLoginPath, fiber.StatusFound)
	}
}

// AdminAPIGuard rejects admin API calls that do not carry the admin cookie.
func AdminAPIGuard(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdminAuthenticated(c, secret) {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Next()
	}
}
