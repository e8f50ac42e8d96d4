package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gallery/internal/middleware"
	"gallery/internal/store"

	"github.com/go-chi/chi"
	rscors "github.com/rs/cors"
)

// Cache holds rendered page bodies between requests.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte) error
}

// Invalidator drops cached renderings of a logical page after its content
// changes.
type Invalidator interface {
	Invalidate(ctx context.Context, page string) error
}

func New(port string, store store.Storer, cache Cache, invalidator Invalidator) Server {
	s := Server{
		port:        port,
		store:       store,
		cache:       cache,
		invalidator: invalidator,
	}

	cors := rscors.New(rscors.Options{
		AllowedOrigins:   []string{"https://gallery.example.com", "http://localhost:3000"},
		AllowCredentials: true,
		Debug:            false,
	})

	r := chi.NewRouter()
	r.Use(cors.Handler)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(""))
	})
	r.Route("/wallpapers", func(r chi.Router) {
		r.Use(middleware.JSONHeaders)
		r.With(WrapResponseWriter).Get("/", s.ListWallpapersHandler)
		r.With(WrapResponseWriter).Get("/{id}", s.GetWallpaperHandler)
		r.Post("/", s.CreateWallpaperHandler)
		r.Post("/reorder", s.ReorderWallpapersHandler)
	})
	r.Get("/collection", s.CollectionViewHandler)
	s.Handler = r
	return s
}

type Server struct {
	http.Handler
	port        string
	store       store.Storer
	cache       Cache
	invalidator Invalidator
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(":"+s.port, s.Handler)
}

func (s *Server) ListWallpapersHandler(w http.ResponseWriter, r *http.Request) {
	wallpapers, err := s.store.List(r.Context())
	if err != nil {
		log.Printf("list wallpapers: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list wallpapers")
		return
	}

	if wallpapers == nil {
		wallpapers = []store.Wallpaper{}
	}

	b, _ := json.Marshal(wallpapers)
	_, _ = w.Write(b)
}

func (s *Server) GetWallpaperHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	wallpaper, err := s.store.Get(r.Context(), id)
	if err != nil {
		log.Printf("get wallpaper %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to get wallpaper")
		return
	}

	if wallpaper == nil {
		w.WriteHeader(404)
		return
	}

	b, _ := json.Marshal(wallpaper)
	_, _ = w.Write(b)
}

func (s *Server) CreateWallpaperHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateWallpaperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("create wallpaper: decode body: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create wallpaper")
		return
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		log.Printf("create wallpaper: parse release date %q: %v", req.ReleaseDate, err)
		writeError(w, http.StatusInternalServerError, "failed to create wallpaper")
		return
	}

	wallpaper, err := s.store.Create(r.Context(), store.Wallpaper{
		URL:         req.URL,
		Name:        req.Name,
		Description: req.Description,
		ExternalURL: req.ExternalURL,
		ReleaseDate: releaseDate,
	})
	if err != nil {
		log.Printf("create wallpaper: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create wallpaper")
		return
	}

	b, _ := json.Marshal(wallpaper)
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(b)
}

func (s *Server) ReorderWallpapersHandler(w http.ResponseWriter, r *http.Request) {
	var updates []store.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		log.Printf("reorder wallpapers: decode body: %v", err)
		writeJSON(w, http.StatusBadRequest, ReorderResponse{Error: "invalid request body"})
		return
	}

	if err := s.store.Reorder(r.Context(), updates); err != nil {
		log.Printf("reorder wallpapers: %v", err)
		writeJSON(w, http.StatusInternalServerError, ReorderResponse{Error: "failed to reorder wallpapers"})
		return
	}

	// The batch is committed; stale cached pages expire via the listener even
	// if this publish fails.
	if err := s.invalidator.Invalidate(r.Context(), CollectionPage); err != nil {
		log.Printf("reorder wallpapers: invalidate: %v", err)
	}

	writeJSON(w, http.StatusOK, ReorderResponse{Success: true})
}

func parseReleaseDate(v string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
