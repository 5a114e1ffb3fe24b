package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Logger:     testLogger(),
	})
}

func inlineResponse(mime, data string) string {
	return `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"` + mime + `","data":"` + data + `"}}]}}]}`
}

func TestGenerateImageInline(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateContentRequest

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(inlineResponse("image/png", "aGVsbG8=")))
	})

	img, err := c.GenerateImage(context.Background(), "a sticker", nil)
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/"+modelImage+":generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.True(t, img.Inline())
	assert.Equal(t, "aGVsbG8=", img.DataBase64)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", img.DataURL())

	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 1, "no reference photo attached")
	assert.Contains(t, gotReq.Contents[0].Parts[0].Text, "a sticker")
}

func TestGenerateImageWithReference(t *testing.T) {
	var gotReq generateContentRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(inlineResponse("image/png", "eA==")))
	})

	_, err := c.GenerateImage(context.Background(), "p", &Reference{
		DataBase64: "data:image/jpeg;base64,c2VsZmll",
		MimeType:   "image/jpeg",
	})
	require.NoError(t, err)

	require.Len(t, gotReq.Contents[0].Parts, 2)
	ref := gotReq.Contents[0].Parts[1].InlineData
	require.NotNil(t, ref)
	assert.Equal(t, "c2VsZmll", ref.Data, "data URL prefix stripped")
	assert.Equal(t, "image/jpeg", ref.MimeType)
}

func TestGenerateImageHostedURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"fileData":{"fileUri":"https://files.example.com/img.png"}}]}}]}`))
	})

	img, err := c.GenerateImage(context.Background(), "p", nil)
	require.NoError(t, err)
	assert.False(t, img.Inline())
	assert.Equal(t, "https://files.example.com/img.png", img.URL)
	assert.Equal(t, "https://files.example.com/img.png", img.DataURL())
}

func TestGenerateImageErrorKinds(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		kind   ErrorKind
	}{
		"rate limited":     {429, "slow down", RateLimited},
		"quota exhausted":  {429, "RESOURCE_EXHAUSTED: quota exceeded for billing plan", QuotaExceeded},
		"billing disabled": {403, "billing is not enabled", QuotaExceeded},
		"server down":      {503, "unavailable", ProviderUnavailable},
		"client error":     {400, "bad request", InvalidResponse},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tc.body, tc.status)
			})

			_, err := c.GenerateImage(context.Background(), "p", nil)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.kind, apiErr.Kind)
			assert.Equal(t, tc.status, apiErr.Status)
		})
	}
}

func TestGenerateImageInvalidResponses(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})
		_, err := c.GenerateImage(context.Background(), "p", nil)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, InvalidResponse, apiErr.Kind)
	})

	t.Run("no image in response", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"sorry"}]}}]}`))
		})
		_, err := c.GenerateImage(context.Background(), "p", nil)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, InvalidResponse, apiErr.Kind)
	})

	t.Run("empty prompt", func(t *testing.T) {
		c := New(Options{APIKey: "k", HTTPClient: http.DefaultClient, Logger: testLogger()})
		_, err := c.GenerateImage(context.Background(), "   ", nil)
		assert.Error(t, err)
	})
}

func TestMimeFromDataURL(t *testing.T) {
	assert.Equal(t, "image/jpeg", MimeFromDataURL("data:image/jpeg;base64,xxx", "image/png"))
	assert.Equal(t, "image/png", MimeFromDataURL("https://example.com/x.png", "image/png"))
}
