package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Payload is the JSON body posted to the downstream automation endpoint after
// a sticker is durably stored.
type Payload struct {
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Timestamp string            `json:"timestamp"`
	Sticker   string            `json:"sticker"`
	Archetype string            `json:"archetype"`
	Survey    map[string]string `json:"survey"`
}

type Options struct {
	URL        string
	AuthHeader string
	AuthValue  string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Notifier struct {
	url        string
	authHeader string
	authValue  string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts Options) *Notifier {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Notifier{
		url:        strings.TrimSpace(opts.URL),
		authHeader: opts.AuthHeader,
		authValue:  opts.AuthValue,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Configured reports whether a webhook target is set at all.
func (n *Notifier) Configured() bool { return n.url != "" }

// Notify posts the payload and returns the opaque response body.
func (n *Notifier) Notify(ctx context.Context, payload Payload) ([]byte, error) {
	if !n.Configured() {
		return nil, fmt.Errorf("no webhook target configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("content-type", "application/json")
	if n.authHeader != "" && n.authValue != "" {
		req.Header.Set(n.authHeader, n.authValue)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notify: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return raw, fmt.Errorf("notify %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}

	n.logger.Debug("workflow notified", "status", resp.StatusCode)
	return raw, nil
}
