// Package web serves the static demo frontend embedded via go:embed: the
// page that mounts the hosted chat widget and handles its client tools.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed static
var staticFS embed.FS

// Handler returns the frontend file server. Unknown paths fall back to
// index.html so a reload on any path still lands on the demo page.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static tree is embedded at build time; a missing
		// subdirectory means a broken build, not a runtime condition.
		panic(err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" || name == "." {
			name = "index.html"
		}

		data, err := fs.ReadFile(sub, name)
		if err != nil {
			name = "index.html"
			data, err = fs.ReadFile(sub, name)
			if err != nil {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
		}

		w.Header().Set("Content-Type", mimeFromExt(path.Ext(name)))
		w.Header().Set("Cache-Control", cacheControlFor(name))
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			_, _ = w.Write(data)
		}
	})
}

// mimeFromExt returns the MIME type for the extensions the demo ships.
func mimeFromExt(ext string) string {
	switch ext {
	case ".html":
		return "text/html; charset=utf-8"
	case ".js", ".mjs":
		return "application/javascript"
	case ".css":
		return "text/css; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}

// cacheControlFor keeps the entry page fresh while letting assets cache.
func cacheControlFor(name string) string {
	if name == "index.html" {
		return "no-cache"
	}
	return "public, max-age=3600"
}
