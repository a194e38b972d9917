package server

import (
	"io"
	"net/http"
	"strconv"
)

const allowedPageMethods = "GET, HEAD"

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", allowedPageMethods)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	page, err := s.renderer.Render()
	if err != nil {
		s.logger.Error("render", "output", s.renderer.OutputPath(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(page)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = io.WriteString(w, page)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
