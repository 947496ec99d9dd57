package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/bhawani/internal/content"
)

// AdminHandler serves the admin pages and the editable-content listing.
type AdminHandler struct {
	source    content.Source
	mediaHost string
	log       *zap.Logger
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(source content.Source, mediaHost string, log *zap.Logger) *AdminHandler {
	return &AdminHandler{source: source, mediaHost: mediaHost, log: log}
}

// LoginPage renders the password form.
func (h *AdminHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("admin_login", nil)
}

// Panel renders the content editor shell; items are loaded from ListMedia.
func (h *AdminHandler) Panel(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Render("admin_panel", fiber.Map{"MediaHost": h.mediaHost})
}

// ListMedia returns every editable item across all content families.
func (h *AdminHandler) ListMedia(c *fiber.Ctx) error {
	items, err := content.Collect(c.UserContext(), h.source)
	if err != nil {
		h.log.Error("failed to fetch media", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch media",
			"details": err.Error(),
		})
	}
	return c.JSON(items)
}
