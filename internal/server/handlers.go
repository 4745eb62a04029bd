package server

import (
	"io"
	"net/http"
)

// handleRoot serves the greeting
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// Only the exact root path with GET (HEAD is derived from GET)
	if r.URL.Path != "/" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = io.WriteString(w, s.config.Greeting)
}
