package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

type HTTPOptions struct {
	BaseURL    string
	Bucket     string
	Key        string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// HTTPStore uploads to a bucket-scoped object endpoint with a bearer
// credential, Supabase-storage style.
type HTTPStore struct {
	baseURL    string
	bucket     string
	key        string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTP(opts HTTPOptions) (*HTTPStore, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("storage base URL is required")
	}
	if opts.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	if opts.Key == "" {
		return nil, fmt.Errorf("storage key is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPStore{
		baseURL:    baseURL,
		bucket:     opts.Bucket,
		key:        opts.Key,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (s *HTTPStore) Put(ctx context.Context, name string, data []byte, mime string) (string, error) {
	objectURL := fmt.Sprintf("%s/%s/%s", s.baseURL, url.PathEscape(s.bucket), url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, objectURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("authorization", "Bearer "+s.key)
	req.Header.Set("content-type", mime)
	// Identical bytes map to the same name, so overwriting is never a conflict.
	req.Header.Set("x-upsert", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("upload %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	s.logger.Debug("object stored", "name", name, "bytes", len(data))
	return s.PublicURL(name), nil
}

func (s *HTTPStore) PublicURL(name string) string {
	return fmt.Sprintf("%s/public/%s/%s", s.baseURL, url.PathEscape(s.bucket), url.PathEscape(name))
}
