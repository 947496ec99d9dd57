package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bhawani/internal/media"
	"github.com/example/bhawani/internal/page"
)

func TestRenderHomeRewritesMedia(t *testing.T) {
	engine := New(media.NewRewriter(""))
	require.NoError(t, engine.Load())

	p := page.Fallback()
	p.Services.Services = []page.Service{{
		ID:       1,
		Title:    "Road Works",
		Slug:     "road-works",
		ImageURL: "https://res.cloudinary.com/demo/image/upload/roads.jpg",
	}}

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "home", p))

	html := buf.String()
	assert.Contains(t, html, "BHAWANI CONSTRUCTION")
	assert.Contains(t, html, "Road Works")
	assert.Contains(t, html, "/upload/f_auto,q_75,w_640,c_limit/roads.jpg")
}

func TestRenderAdminPages(t *testing.T) {
	engine := New(media.NewRewriter(""))

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "admin_login", nil))
	assert.Contains(t, buf.String(), "Admin Access")

	buf.Reset()
	require.NoError(t, engine.Render(&buf, "admin_panel", map[string]string{"MediaHost": "res.cloudinary.com"}))
	assert.Contains(t, buf.String(), `"res.cloudinary.com"`)
}

func TestRenderUnknownTemplate(t *testing.T) {
	engine := New(media.NewRewriter(""))
	var buf bytes.Buffer
	assert.Error(t, engine.Render(&buf, "missing", nil))
}

func TestRenderUsesConfiguredMediaHost(t *testing.T) {
	engine := New(media.NewRewriter("media.example.net"))

	p := page.Fallback()
	p.About.MainImageURL = "https://media.example.net/acme/upload/team.jpg"
	p.Services.Services = []page.Service{{
		ID:       2,
		Title:    "Bridges",
		Slug:     "bridges",
		ImageURL: "https://res.cloudinary.com/demo/image/upload/bridge.jpg",
	}}

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "home", p))
	assert.Contains(t, buf.String(), "/acme/upload/f_auto,q_75,w_1200,c_limit/team.jpg")
	assert.Contains(t, buf.String(), "https://res.cloudinary.com/demo/image/upload/bridge.jpg")
}
