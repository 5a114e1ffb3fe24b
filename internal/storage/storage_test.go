package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPStorePut(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotUpsert, gotMime string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("authorization")
		gotUpsert = r.Header.Get("x-upsert")
		gotMime = r.Header.Get("content-type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := NewHTTP(HTTPOptions{
		BaseURL:    srv.URL,
		Bucket:     "stickers",
		Key:        "secret-key",
		HTTPClient: srv.Client(),
		Logger:     testLogger(),
	})
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "abc123.png", []byte("data"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/stickers/abc123.png", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, "image/png", gotMime)
	assert.Equal(t, []byte("data"), gotBody)
	assert.Equal(t, srv.URL+"/public/stickers/abc123.png", url)
}

func TestHTTPStorePutFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	store, err := NewHTTP(HTTPOptions{BaseURL: srv.URL, Bucket: "b", Key: "k", HTTPClient: srv.Client()})
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "x.png", []byte("data"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestNewHTTPValidation(t *testing.T) {
	for name, opts := range map[string]HTTPOptions{
		"missing base":   {Bucket: "b", Key: "k"},
		"missing bucket": {BaseURL: "http://x", Key: "k"},
		"missing key":    {BaseURL: "http://x", Bucket: "b"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewHTTP(opts)
			assert.Error(t, err)
		})
	}
}

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(LocalOptions{Dir: dir, PublicBase: "http://localhost:8080/public"})

	url, err := store.Put(context.Background(), "abc123.png", []byte("data"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/public/abc123.png", url)

	written, err := os.ReadFile(filepath.Join(dir, "abc123.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), written)
}

func TestLocalStoreRejectsPathEscape(t *testing.T) {
	store := NewLocal(LocalOptions{Dir: t.TempDir(), PublicBase: "http://x/public"})

	for _, name := range []string{"", "../evil.png", "a/b.png"} {
		_, err := store.Put(context.Background(), name, []byte("x"), "image/png")
		assert.Error(t, err, "name %q", name)
	}
}

type stubStore struct {
	url string
	err error
	n   int
}

func (s *stubStore) Put(ctx context.Context, name string, data []byte, mime string) (string, error) {
	s.n++
	return s.url, s.err
}

func TestFallbackStore(t *testing.T) {
	t.Run("primary success skips secondary", func(t *testing.T) {
		primary := &stubStore{url: "http://primary/x"}
		secondary := &stubStore{url: "http://secondary/x"}
		fb := NewFallback(primary, secondary, testLogger())

		url, err := fb.Put(context.Background(), "x.png", []byte("d"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "http://primary/x", url)
		assert.Equal(t, 0, secondary.n)
	})

	t.Run("primary failure degrades to secondary", func(t *testing.T) {
		primary := &stubStore{err: errors.New("down")}
		secondary := &stubStore{url: "http://secondary/x"}
		fb := NewFallback(primary, secondary, testLogger())

		url, err := fb.Put(context.Background(), "x.png", []byte("d"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "http://secondary/x", url)
	})

	t.Run("both failing reports the secondary error", func(t *testing.T) {
		fb := NewFallback(&stubStore{err: errors.New("a")}, &stubStore{err: errors.New("b")}, testLogger())
		_, err := fb.Put(context.Background(), "x.png", []byte("d"), "image/png")
		assert.Error(t, err)
	})
}
