package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/example/bhawani/internal/page"
)

// PageBuilder assembles the public page; it never fails.
type PageBuilder interface {
	Build(ctx context.Context) page.Page
}

// PageHandler serves the public marketing page.
type PageHandler struct {
	pages PageBuilder
}

// NewPageHandler constructs PageHandler.
func NewPageHandler(pages PageBuilder) *PageHandler {
	return &PageHandler{pages: pages}
}

// Home renders the landing page from the current active content.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Render("home", h.pages.Build(c.UserContext()))
}
