package server

import (
	"bytes"
	"log"
	"net/http"

	"gallery/internal/cache"
	"gallery/internal/cdn"
	"gallery/view"
)

// CollectionPage is the logical identity of the collection detail page, used
// as the cache and invalidation key.
const CollectionPage = "collection"

func (s *Server) CollectionViewHandler(w http.ResponseWriter, r *http.Request) {
	key := cache.PageKey(CollectionPage)

	if b, err := s.cache.Get(r.Context(), key); err != nil {
		log.Printf("collection page: cache get: %v", err)
	} else if len(b) > 0 {
		_, _ = w.Write(b)
		return
	}

	wallpapers, err := s.store.ListByOrder(r.Context())
	if err != nil {
		http.Error(w, "failed to load collection", http.StatusInternalServerError)
		log.Printf("collection page: %v", err)
		return
	}

	type item struct {
		Name        string
		Description string
		ExternalURL string
		ImgSrc      string
	}

	type Page struct {
		Wallpapers []item
	}

	p := Page{Wallpapers: make([]item, 0, len(wallpapers))}
	for _, wp := range wallpapers {
		p.Wallpapers = append(p.Wallpapers, item{
			Name:        wp.Name,
			Description: wp.Description,
			ExternalURL: wp.ExternalURL,
			ImgSrc:      cdn.ImageURL(wp.URL, cdn.DefaultWidth),
		})
	}

	var buf bytes.Buffer
	if err := view.Collection.Execute(&buf, p); err != nil {
		http.Error(w, "failed to render collection", http.StatusInternalServerError)
		log.Printf("collection page: render: %v", err)
		return
	}

	if err := s.cache.Set(r.Context(), key, buf.Bytes()); err != nil {
		log.Printf("collection page: cache set: %v", err)
	}

	_, _ = buf.WriteTo(w)
}
