// Package web serves the embedded form page.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// PageHandler returns a handler serving the embedded form UI.
// "/" maps to index.html; everything else is served from the static tree.
func PageHandler() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// Embedded tree is fixed at compile time; this cannot fail at runtime.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
