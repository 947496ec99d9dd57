package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/bhawani/internal/config"
	"github.com/example/bhawani/internal/middleware"
	"github.com/example/bhawani/internal/utils"
)

const adminCookieMaxAge = 7 * 24 * time.Hour

// AuthHandler issues and clears the admin cookie.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login sets the admin cookie when the password matches.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "password is required")
	}

	if !utils.CheckAdminPassword(h.cfg.AdminPasswordHash, h.cfg.AdminPassword, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid password")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    h.cfg.AdminSecret,
		Path:     "/",
		MaxAge:   int(adminCookieMaxAge / time.Second),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true})
}

// Logout expires the admin cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true})
}
