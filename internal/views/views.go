// Package views renders the embedded HTML templates through fiber's html engine.
package views

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"

	"github.com/example/bhawani/internal/media"
)

//go:embed templates/*.html
var files embed.FS

// New builds the template engine. Each file is a template named after the
// file without its extension; partials.html holds shared blocks.
func New(rw media.Rewriter) *html.Engine {
	templates, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(templates), ".html")
	engine.AddFunc("img", func(src string, width int) string {
		return rw.Rewrite(src, width, 0)
	})
	engine.AddFunc("imgq", func(src string, width, quality int) string {
		return rw.Rewrite(src, width, quality)
	})
	engine.AddFunc("year", func() int {
		return time.Now().Year()
	})
	return engine
}
