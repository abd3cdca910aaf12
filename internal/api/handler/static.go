package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mcoot/machgame/internal/api/apierr"
)

// StaticHandler serves the site assets under <siteDir>/static
type StaticHandler struct {
	staticDir string
}

// NewStaticHandler creates a handler for the given site directory
func NewStaticHandler(siteDir string) *StaticHandler {
	return &StaticHandler{staticDir: filepath.Join(siteDir, "static")}
}

// Index handles GET /
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "index.html")
}

// File handles GET /static/{path}
func (h *StaticHandler) File(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, strings.TrimPrefix(r.URL.Path, "/static/"))
}

func (h *StaticHandler) serve(w http.ResponseWriter, r *http.Request, name string) {
	// Rooting the path before cleaning keeps ".." from escaping the static dir
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	if clean == "" {
		apierr.WriteError(w, apierr.NewNotFoundError())
		return
	}

	f, err := os.Open(filepath.Join(h.staticDir, filepath.FromSlash(clean)))
	if err != nil {
		apierr.WriteError(w, apierr.NewNotFoundError())
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		apierr.WriteError(w, apierr.NewNotFoundError())
		return
	}

	// ServeContent, unlike ServeFile, does not redirect requests for index.html
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
