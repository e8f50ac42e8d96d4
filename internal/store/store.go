package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-faster/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Storer interface {
	Get(ctx context.Context, id string) (*Wallpaper, error)
	List(ctx context.Context) ([]Wallpaper, error)
	ListByOrder(ctx context.Context) ([]Wallpaper, error)
	Create(ctx context.Context, w Wallpaper) (*Wallpaper, error)
	Reorder(ctx context.Context, updates []OrderUpdate) error
}

func New(collection string, firestore *firestore.Client) Store {
	return Store{
		collection: collection,
		firestore:  firestore,
	}
}

type Store struct {
	collection string
	firestore  *firestore.Client
}

func (s *Store) Get(ctx context.Context, id string) (*Wallpaper, error) {
	doc, err := s.firestore.Collection(s.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var wallpaper Wallpaper
	if err := doc.DataTo(&wallpaper); err != nil {
		return nil, err
	}

	return &wallpaper, nil
}

// List returns every wallpaper, newest release first. Wallpapers sharing a
// release date come back newest-created first.
func (s *Store) List(ctx context.Context) ([]Wallpaper, error) {
	query := s.firestore.Collection(s.collection).
		OrderBy("releaseDate", firestore.Desc).
		OrderBy("createdAt", firestore.Desc)

	return s.getAll(ctx, query)
}

// ListByOrder returns every wallpaper in collection display order.
func (s *Store) ListByOrder(ctx context.Context) ([]Wallpaper, error) {
	query := s.firestore.Collection(s.collection).
		OrderBy("order", firestore.Asc)

	return s.getAll(ctx, query)
}

func (s *Store) getAll(ctx context.Context, query firestore.Query) ([]Wallpaper, error) {
	dsnap, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	wallpapers := make([]Wallpaper, 0, len(dsnap))
	for _, doc := range dsnap {
		var wallpaper Wallpaper
		if err := doc.DataTo(&wallpaper); err != nil {
			return nil, err
		}
		wallpapers = append(wallpapers, wallpaper)
	}

	return wallpapers, nil
}

// Create persists a new wallpaper. The document id and creation timestamp are
// assigned here, never by the caller.
func (s *Store) Create(ctx context.Context, w Wallpaper) (*Wallpaper, error) {
	doc := s.firestore.Collection(s.collection).NewDoc()
	w.ID = doc.ID
	w.CreatedAt = time.Now().UTC()

	if _, err := doc.Create(ctx, w); err != nil {
		return nil, errors.Wrap(err, "create wallpaper")
	}

	return &w, nil
}

// Reorder applies every order update in a single write batch. The commit is
// all-or-nothing: an update against a missing document fails the whole batch
// and no order changes.
func (s *Store) Reorder(ctx context.Context, updates []OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	batch := s.firestore.Batch()
	for _, u := range updates {
		batch.Update(s.firestore.Collection(s.collection).Doc(u.ID), []firestore.Update{
			{Path: "order", Value: u.Order},
		})
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit reorder batch")
	}

	return nil
}
