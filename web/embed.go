// Package web holds the server-rendered views.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

// DefaultLayout wraps every rendered page.
const DefaultLayout = "layouts/main"

// NewViewEngine loads the embedded templates. Names are paths under views/
// without the extension, e.g. "tasks/index".
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("web: views directory missing from embed: " + err.Error())
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("formatTime", formatTime)
	return engine
}
