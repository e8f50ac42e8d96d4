package server

import (
	"encoding/json"
	"net/http"
)

// CreateWallpaperRequest carries the caller-supplied fields of a new
// wallpaper. Only the release date is validated; everything else is stored
// as-is.
type CreateWallpaperRequest struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ExternalURL string `json:"externalUrl"`
	ReleaseDate string `json:"releaseDate"`
}

type ReorderResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	b, _ := json.Marshal(v)
	w.WriteHeader(code)
	_, _ = w.Write(b)
}
