package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gallery/internal/server"
	"gallery/internal/store"
	"gallery/mocks"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var hc = http.Client{Timeout: 2 * time.Second}

func newTestServer(t *testing.T) (*httptest.Server, *mocks.Storer, *mocks.Cache, *mocks.Invalidator) {
	t.Helper()

	db := mocks.NewStorer(t)
	pageCache := mocks.NewCache(t)
	invalidator := mocks.NewInvalidator(t)

	s := server.New("8080", db, pageCache, invalidator)
	ts := httptest.NewServer(s.Handler)
	t.Cleanup(ts.Close)

	return ts, db, pageCache, invalidator
}

func TestListWallpapers_ReturnsWallpapersInStoreOrder(t *testing.T) {
	w := []store.Wallpaper{
		{ID: "w2", Name: "Dunes", ReleaseDate: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "w1", Name: "Tides", ReleaseDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	ts, db, _, _ := newTestServer(t)
	db.On("List", mock.Anything).Return(w, nil)

	res, err := hc.Get(ts.URL + "/wallpapers")
	require.Nil(t, err)

	var got []store.Wallpaper
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, 2, len(got))
	assert.Equal(t, "w2", got[0].ID)
	assert.Equal(t, "w1", got[1].ID)
}

func TestListWallpapers_EmptyStoreReturnsEmptyArray(t *testing.T) {
	ts, db, _, _ := newTestServer(t)
	db.On("List", mock.Anything).Return([]store.Wallpaper{}, nil)

	res, err := hc.Get(ts.URL + "/wallpapers")
	require.Nil(t, err)

	b, err := io.ReadAll(res.Body)
	require.Nil(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "[]", string(b))
}

func TestListWallpapers_StoreErrorIsNotLeaked(t *testing.T) {
	ts, db, _, _ := newTestServer(t)
	db.On("List", mock.Anything).Return(nil, errors.New("rpc error: connection refused"))

	res, err := hc.Get(ts.URL + "/wallpapers")
	require.Nil(t, err)

	var got server.ErrorResponse
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "failed to list wallpapers", got.Error)
}

func TestListWallpapers_ServesNotModifiedOnMatchingETag(t *testing.T) {
	w := []store.Wallpaper{{ID: "w1", Name: "Tides"}}
	ts, db, _, _ := newTestServer(t)
	db.On("List", mock.Anything).Return(w, nil)

	res, err := hc.Get(ts.URL + "/wallpapers")
	require.Nil(t, err)
	_, _ = io.Copy(io.Discard, res.Body)
	res.Body.Close()

	etag := res.Header.Get("ETag")
	require.NotEmpty(t, etag)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/wallpapers", nil)
	require.Nil(t, err)
	req.Header.Set("If-None-Match", etag)

	res, err = hc.Do(req)
	require.Nil(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotModified, res.StatusCode)
}

func TestGetWallpaper_ReturnsWallpaper(t *testing.T) {
	ts, db, _, _ := newTestServer(t)
	db.On("Get", mock.Anything, "w1").Return(&store.Wallpaper{ID: "w1", Name: "Tides"}, nil)

	res, err := hc.Get(ts.URL + "/wallpapers/w1")
	require.Nil(t, err)

	var got store.Wallpaper
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Tides", got.Name)
}

func TestGetWallpaper_UnknownIDReturns404(t *testing.T) {
	ts, db, _, _ := newTestServer(t)
	db.On("Get", mock.Anything, "nope").Return(nil, nil)

	res, err := hc.Get(ts.URL + "/wallpapers/nope")
	require.Nil(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCreateWallpaper_ReturnsCreatedRecord(t *testing.T) {
	created := store.Wallpaper{
		ID:          "fstore-doc-1",
		URL:         "https://res.cloudinary.com/demo/image/upload/tides.jpg",
		Name:        "Tides",
		ReleaseDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
	}

	ts, db, _, _ := newTestServer(t)
	db.On("Create", mock.Anything, mock.MatchedBy(func(w store.Wallpaper) bool {
		// id and createdAt are assigned by the store, never by the caller
		return w.ID == "" && w.CreatedAt.IsZero() &&
			w.Name == "Tides" &&
			w.ReleaseDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	})).Return(&created, nil)

	body := `{"url":"https://res.cloudinary.com/demo/image/upload/tides.jpg","name":"Tides","description":"","externalUrl":"","releaseDate":"2024-06-01"}`
	res, err := hc.Post(ts.URL+"/wallpapers", "application/json", strings.NewReader(body))
	require.Nil(t, err)

	var got store.Wallpaper
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "fstore-doc-1", got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateWallpaper_UnparseableDateFailsGenerically(t *testing.T) {
	ts, _, _, _ := newTestServer(t)

	body := `{"url":"https://example.com/a.jpg","name":"A","releaseDate":"not a date"}`
	res, err := hc.Post(ts.URL+"/wallpapers", "application/json", strings.NewReader(body))
	require.Nil(t, err)

	var got server.ErrorResponse
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "failed to create wallpaper", got.Error)
}

func TestCreateWallpaper_StoreErrorIsNotLeaked(t *testing.T) {
	ts, db, _, _ := newTestServer(t)
	db.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("permission denied on collection"))

	body := `{"url":"https://example.com/a.jpg","name":"A","releaseDate":"2024-06-01"}`
	res, err := hc.Post(ts.URL+"/wallpapers", "application/json", strings.NewReader(body))
	require.Nil(t, err)

	var got server.ErrorResponse
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "failed to create wallpaper", got.Error)
}

func TestReorderWallpapers_CommitsAndInvalidatesCollectionPage(t *testing.T) {
	updates := []store.OrderUpdate{{ID: "w1", Order: 2}, {ID: "w2", Order: 1}}

	ts, db, _, invalidator := newTestServer(t)
	db.On("Reorder", mock.Anything, updates).Return(nil)
	invalidator.On("Invalidate", mock.Anything, server.CollectionPage).Return(nil)

	res, err := hc.Post(ts.URL+"/wallpapers/reorder", "application/json", bytes.NewReader(mustJSON(t, updates)))
	require.Nil(t, err)

	var got server.ReorderResponse
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, got.Success)
	assert.Empty(t, got.Error)
}

func TestReorderWallpapers_FailedBatchReportsGenericError(t *testing.T) {
	updates := []store.OrderUpdate{{ID: "missing", Order: 1}}

	ts, db, _, invalidator := newTestServer(t)
	db.On("Reorder", mock.Anything, updates).Return(errors.New("rpc error: code = NotFound"))

	res, err := hc.Post(ts.URL+"/wallpapers/reorder", "application/json", bytes.NewReader(mustJSON(t, updates)))
	require.Nil(t, err)

	var got server.ReorderResponse
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.False(t, got.Success)
	assert.Equal(t, "failed to reorder wallpapers", got.Error)
	invalidator.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestReorderWallpapers_PublishFailureDoesNotFailRequest(t *testing.T) {
	updates := []store.OrderUpdate{{ID: "w1", Order: 1}}

	ts, db, _, invalidator := newTestServer(t)
	db.On("Reorder", mock.Anything, updates).Return(nil)
	invalidator.On("Invalidate", mock.Anything, server.CollectionPage).Return(errors.New("pubsub unavailable"))

	res, err := hc.Post(ts.URL+"/wallpapers/reorder", "application/json", bytes.NewReader(mustJSON(t, updates)))
	require.Nil(t, err)

	var got server.ReorderResponse
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, got.Success)
}

func TestReorderWallpapers_MalformedBodyIsRejected(t *testing.T) {
	ts, _, _, _ := newTestServer(t)

	res, err := hc.Post(ts.URL+"/wallpapers/reorder", "application/json", strings.NewReader(`{"id":"w1"}`))
	require.Nil(t, err)

	var got server.ReorderResponse
	require.Nil(t, convertTo(res.Body, &got))

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.False(t, got.Success)
}

func TestCollectionView_RendersOptimizedImagesAndCachesPage(t *testing.T) {
	w := []store.Wallpaper{
		{ID: "w1", Name: "Tides", URL: "https://res.cloudinary.com/demo/image/upload/tides.jpg", Order: 1},
		{ID: "w2", Name: "Dunes", URL: "https://res.cloudinary.com/demo/image/upload/dunes.jpg", Order: 2},
	}

	ts, db, pageCache, _ := newTestServer(t)
	db.On("ListByOrder", mock.Anything).Return(w, nil)
	pageCache.On("Get", mock.Anything, "page:collection").Return(nil, nil)
	pageCache.On("Set", mock.Anything, "page:collection", mock.Anything).Return(nil)

	res, err := hc.Get(ts.URL + "/collection")
	require.Nil(t, err)

	b, err := io.ReadAll(res.Body)
	require.Nil(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := string(b)
	assert.Contains(t, body, "https://res.cloudinary.com/demo/image/upload/w_500,q_auto,f_auto/tides.jpg")
	assert.Contains(t, body, "https://res.cloudinary.com/demo/image/upload/w_500,q_auto,f_auto/dunes.jpg")
	assert.Less(t, strings.Index(body, "Tides"), strings.Index(body, "Dunes"))
}

func TestCollectionView_ServesCachedPageWithoutStore(t *testing.T) {
	ts, _, pageCache, _ := newTestServer(t)
	pageCache.On("Get", mock.Anything, "page:collection").Return([]byte("<html>cached</html>"), nil)

	res, err := hc.Get(ts.URL + "/collection")
	require.Nil(t, err)

	b, err := io.ReadAll(res.Body)
	require.Nil(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "<html>cached</html>", string(b))
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.Nil(t, err)
	return b
}

func convertTo(r io.ReadCloser, out any) error {
	b, err := io.ReadAll(r)
	defer r.Close()
	if err != nil {
		return err
	}

	return json.Unmarshal(b, out)
}
