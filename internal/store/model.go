package store

import "time"

type Wallpaper struct {
	ID          string    `json:"id" firestore:"id"`
	URL         string    `json:"url" firestore:"url"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	ExternalURL string    `json:"externalUrl" firestore:"externalUrl"`
	ReleaseDate time.Time `json:"releaseDate" firestore:"releaseDate"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	Order       int       `json:"order" firestore:"order"`
}

// OrderUpdate repositions a single wallpaper within the collection.
type OrderUpdate struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}
