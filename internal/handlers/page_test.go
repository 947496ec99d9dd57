package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bhawani/internal/page"
)

type staticPages struct {
	page page.Page
}

func (s staticPages) Build(context.Context) page.Page {
	return s.page
}

func TestHome(t *testing.T) {
	p := page.Fallback()
	p.Hero.Title = "Roads & Bridges"

	app := newTestApp()
	app.Get("/", NewPageHandler(staticPages{page: p}).Home)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))

	body := readBody(t, resp)
	assert.Contains(t, body, "Roads &amp; Bridges")
	assert.Contains(t, body, p.About.SectionTitle)
}
