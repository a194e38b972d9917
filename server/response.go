package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

type errorBody struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// writeError replies with a small JSON document so that failures never look like the page.
func writeError(w http.ResponseWriter, status int, message string) {
	if strings.TrimSpace(message) == "" {
		message = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Status: status, Error: message})
}
