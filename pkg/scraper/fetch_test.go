package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/nba-salary-predictor/pkg/models"
)

type memoryCache struct {
	pages   map[string]string
	failGet bool
}

func (m *memoryCache) Get(_ context.Context, url string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("cache offline")
	}
	body, ok := m.pages[url]
	return body, ok, nil
}

func (m *memoryCache) Set(_ context.Context, url, body string) error {
	m.pages[url] = body
	return nil
}

func TestFetchURL_UsesCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, "<html>page</html>")
	}))
	defer srv.Close()

	cache := &memoryCache{pages: map[string]string{}}
	f := NewFetcher(5*time.Second, cache)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		body, err := f.FetchURL(ctx, srv.URL+"/players/a.html")
		require.NoError(t, err)
		assert.Equal(t, "<html>page</html>", body)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
	assert.Contains(t, cache.pages, srv.URL+"/players/a.html")
}

func TestFetchURL_CacheFailureFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "fresh")
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, &memoryCache{pages: map[string]string{}, failGet: true})
	body, err := f.FetchURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "fresh", body)
}

func TestFetchURL_Non200(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cache := &memoryCache{pages: map[string]string{}}
	_, err := NewFetcher(5*time.Second, cache).FetchURL(context.Background(), srv.URL)
	assert.ErrorIs(t, err, models.ErrFetch)
	assert.Empty(t, cache.pages)
}

func TestFetchURL_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := NewFetcher(100*time.Millisecond, nil).FetchURL(context.Background(), srv.URL)
	assert.ErrorIs(t, err, models.ErrFetch)
}

func TestSaveContentToFile(t *testing.T) {
	path := t.TempDir() + "/page.html"
	require.NoError(t, SaveContentToFile(path, "<html></html>"))
}
