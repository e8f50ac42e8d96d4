package internal

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gallery/internal/cache"
	"gallery/internal/events"
	"gallery/internal/server"
	"gallery/internal/store"

	firebase "firebase.google.com/go"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"
)

const collection = "Wallpapers"

func Bootstrap() error {
	ctx := context.Background()

	saJSON, err := base64.StdEncoding.DecodeString(os.Getenv("FIRESTORE_SA"))
	if err != nil {
		return err
	}
	sa := option.WithCredentialsJSON(saJSON)
	projectID := os.Getenv("PROJECT_ID")

	firebaseClient, err := firebase.NewApp(ctx, nil, sa)
	if err != nil {
		return err
	}

	firestore, err := firebaseClient.Firestore(ctx)
	if err != nil {
		return err
	}

	wallpaperStore := store.New(collection, firestore)

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	pageCache := cache.New(redis.NewClient(&redis.Options{Addr: redisAddr}))

	publisher, err := events.NewPublisher(ctx, projectID, sa)
	if err != nil {
		return err
	}
	defer publisher.Close()

	port := os.Getenv("PORT")
	srv := server.New(port, &wallpaperStore, pageCache, publisher)

	errs := make(chan error, 2)
	go func() {
		err := events.Listen(ctx, projectID, events.TopicID, events.SubID, func(ctx context.Context, page string) error {
			return pageCache.Invalidate(ctx, cache.PageKey(page))
		}, sa)
		if err != nil {
			errs <- err
		}
	}()

	go func() {
		log.Printf("server started on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil {
			errs <- err
		}
	}()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case <-exit:
		return fmt.Errorf("sigterm received")
	}
}
