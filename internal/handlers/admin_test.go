package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/bhawani/internal/models"
)

type fakeSource struct {
	clientsErr error
}

func (f *fakeSource) ActiveAbout(context.Context) (*models.AboutUsContent, error) {
	img := "https://res.cloudinary.com/demo/image/upload/about.jpg"
	return &models.AboutUsContent{HeroImageURL: &img}, nil
}

func (f *fakeSource) Services(context.Context) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeSource) FeaturedProjects(context.Context) ([]models.FeaturedProject, error) {
	return nil, nil
}

func (f *fakeSource) Clients(context.Context) ([]models.Client, error) {
	if f.clientsErr != nil {
		return nil, f.clientsErr
	}
	return []models.Client{}, nil
}

func (f *fakeSource) ActiveFooter(context.Context) (*models.FooterContent, error) {
	return nil, nil
}

func (f *fakeSource) SocialLinks(context.Context) ([]models.SocialLink, error) {
	return nil, nil
}

func newAdminApp(src *fakeSource) *fiber.App {
	app := newTestApp()
	h := NewAdminHandler(src, "res.cloudinary.com", zap.NewNop())
	app.Get("/admin/login", h.LoginPage)
	app.Get("/admin", h.Panel)
	app.Get("/api/admin/media", h.ListMedia)
	return app
}

func TestListMedia(t *testing.T) {
	resp, err := newAdminApp(&fakeSource{}).Test(httptest.NewRequest(http.MethodGet, "/api/admin/media", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []map[string]interface{}
	decode(t, resp, &items)
	require.NotEmpty(t, items)
	assert.Equal(t, "hero-info", items[0]["id"])
	assert.Equal(t, "info", items[0]["type"])
}

func TestListMediaFailure(t *testing.T) {
	src := &fakeSource{clientsErr: errors.New("relation \"clients\" does not exist")}
	resp, err := newAdminApp(src).Test(httptest.NewRequest(http.MethodGet, "/api/admin/media", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Failed to fetch media", body["error"])
	assert.Contains(t, body["details"], "clients")
}

func TestAdminPages(t *testing.T) {
	app := newAdminApp(&fakeSource{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "password")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Contains(t, readBody(t, resp), "res.cloudinary.com")
}
