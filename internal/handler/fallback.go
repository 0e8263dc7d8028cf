package handler

import (
	"net/http"
	"path"
	"strings"

	"github.com/forgo/phonebook/internal/model"
)

// UnknownEndpoint writes the 404 used for every unmatched route
func UnknownEndpoint(w http.ResponseWriter, r *http.Request) {
	WriteError(w, model.NewUnknownEndpointError())
}

// FallbackHandler serves the frontend build for unmatched GET and HEAD
// requests and answers everything else with UnknownEndpoint
type FallbackHandler struct {
	root http.FileSystem
}

// NewFallbackHandler serves files from dir. An empty dir disables static files.
func NewFallbackHandler(dir string) *FallbackHandler {
	h := &FallbackHandler{}
	if dir != "" {
		h.root = http.Dir(dir)
	}
	return h
}

func (h *FallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.root != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		if h.serveFile(w, r) {
			return
		}
	}
	UnknownEndpoint(w, r)
}

// serveFile writes the static file for the request path, reporting false
// when there is none. Directories resolve to their index.html.
func (h *FallbackHandler) serveFile(w http.ResponseWriter, r *http.Request) bool {
	name := path.Clean("/" + r.URL.Path)
	if strings.HasSuffix(name, "/") {
		name += "index.html"
	}

	for range 2 {
		f, err := h.root.Open(name)
		if err != nil {
			return false
		}
		stat, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return false
		}
		if stat.IsDir() {
			_ = f.Close()
			name = path.Join(name, "index.html")
			continue
		}
		http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
		_ = f.Close()
		return true
	}
	return false
}
