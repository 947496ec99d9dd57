package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var cdn = NewRewriter("")

func TestRewriteLeavesForeignURLs(t *testing.T) {
	for _, src := range []string{
		"",
		"/images/logo.png",
		"https://example.com/upload/photo.jpg",
		"https://images.unsplash.com/photo-1?w=400",
	} {
		assert.Equal(t, src, cdn.Rewrite(src, 800, 60), src)
	}
}

func TestRewriteRequiresSingleMarker(t *testing.T) {
	none := "https://res.cloudinary.com/demo/image/fetch/photo.jpg"
	assert.Equal(t, none, cdn.Rewrite(none, 800, 60))

	twice := "https://res.cloudinary.com/demo/image/upload/v1/upload/photo.jpg"
	assert.Equal(t, twice, cdn.Rewrite(twice, 800, 60))
}

func TestRewriteInjectsTransformation(t *testing.T) {
	src := "https://res.cloudinary.com/demo/image/upload/v1712/site/hero.jpg"
	got := cdn.Rewrite(src, 800, 60)

	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/f_auto,q_60,w_800,c_limit/v1712/site/hero.jpg", got)
	assert.Contains(t, got, "q_60")
	assert.NotContains(t, got, "q_75")
}

func TestRewriteDefaultQuality(t *testing.T) {
	src := "https://res.cloudinary.com/demo/video/upload/clip.mp4"
	assert.Equal(t, "https://res.cloudinary.com/demo/video/upload/f_auto,q_75,w_1920,c_limit/clip.mp4", cdn.Rewrite(src, 1920, 0))
}

func TestRewriterCustomHost(t *testing.T) {
	r := NewRewriter("media.example.net")
	src := "https://media.example.net/acme/upload/a.png"
	assert.Equal(t, "https://media.example.net/acme/upload/f_auto,q_75,w_320,c_limit/a.png", r.Rewrite(src, 320, 0))

	cdn := "https://res.cloudinary.com/demo/image/upload/a.png"
	assert.Equal(t, cdn, r.Rewrite(cdn, 320, 0))
}

func TestOwns(t *testing.T) {
	r := NewRewriter("")
	assert.True(t, r.Owns("https://res.cloudinary.com/demo/image/upload/a.png"))
	assert.False(t, r.Owns("http://res.cloudinary.com/demo/image/upload/a.png"))
	assert.False(t, r.Owns("https://res.cloudinary.com/"))
	assert.False(t, r.Owns("https://evil.example/res.cloudinary.com/a.png"))
}
