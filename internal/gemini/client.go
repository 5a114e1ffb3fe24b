package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
)

const modelImage = "gemini-2.5-flash-image"

type Options struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Client struct {
	apiKey     string
	baseURL    string
	apiVersion string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}

	apiVersion := strings.TrimSpace(opts.APIVersion)
	if apiVersion == "" {
		apiVersion = "v1beta"
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		apiVersion: apiVersion,
		httpClient: opts.HTTPClient,
		logger:     logger,
	}
}

// GenerateImage produces one square sticker portrait for the prompt. A
// reference photo, when present, rides along as inline data.
func (c *Client) GenerateImage(ctx context.Context, promptText string, ref *Reference) (Image, error) {
	promptText = strings.TrimSpace(promptText)
	if promptText == "" {
		return Image{}, &APIError{Kind: InvalidResponse, Message: "prompt is empty"}
	}

	parts := []part{{Text: promptText}}
	if ref != nil && ref.DataBase64 != "" {
		mime := ref.MimeType
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, part{InlineData: &blob{
			Data:     stripDataURLPrefix(ref.DataBase64),
			MimeType: mime,
		}})
	}

	req := generateContentRequest{
		Contents: []content{{Role: "user", Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        &imageConfig{AspectRatio: "1:1"},
		},
	}

	img, err := c.generateContent(ctx, modelImage, req)
	if err != nil && req.GenerationConfig.ImageConfig != nil && isUnknownFieldError(err, "imageConfig") {
		req.GenerationConfig.ImageConfig = nil
		img, err = c.generateContent(ctx, modelImage, req)
	}
	return img, err
}

func (c *Client) generateContent(ctx context.Context, model string, payload generateContentRequest) (Image, error) {
	if c.httpClient == nil {
		return Image{}, &APIError{Kind: ProviderUnavailable, Message: "http client is nil"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Image{}, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateContent", c.baseURL, c.apiVersion, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Image{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Image{}, err
		}
		return Image{}, &APIError{Kind: ProviderUnavailable, Message: "request failed", Err: err}
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Image{}, &APIError{Kind: ProviderUnavailable, Message: "read response", Err: err}
	}

	if httpResp.StatusCode >= 400 {
		msg := strings.TrimSpace(string(rawBody))
		c.logger.Warn("generation request rejected", "status", httpResp.StatusCode)
		return Image{}, &APIError{
			Kind:    kindForStatus(httpResp.StatusCode, msg),
			Status:  httpResp.StatusCode,
			Message: msg,
		}
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		return Image{}, &APIError{Kind: InvalidResponse, Message: "decode response", Err: err}
	}

	img, ok := extractImage(decoded)
	if !ok {
		return Image{}, &APIError{Kind: InvalidResponse, Message: "response contains no image"}
	}
	return img, nil
}

// extractImage normalizes the provider response: inline data and hosted file
// URIs are both valid result shapes.
func extractImage(resp generateContentResponse) (Image, bool) {
	if len(resp.Candidates) == 0 {
		return Image{}, false
	}

	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			mime := p.InlineData.MimeType
			if mime == "" {
				mime = "image/png"
			}
			return Image{DataBase64: p.InlineData.Data, MimeType: mime}, true
		}
		if p.FileData != nil && p.FileData.FileURI != "" {
			mime := p.FileData.MimeType
			if mime == "" {
				mime = "image/png"
			}
			return Image{URL: p.FileData.FileURI, MimeType: mime}, true
		}
	}

	return Image{}, false
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities,omitempty"`
	ImageConfig        *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string    `json:"text,omitempty"`
	InlineData *blob     `json:"inlineData,omitempty"`
	FileData   *fileData `json:"fileData,omitempty"`
}

type blob struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

type fileData struct {
	FileURI  string `json:"fileUri"`
	MimeType string `json:"mimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

var dataURLRegex = regexp.MustCompile(`^data:([^;]+);base64,`)

// MimeFromDataURL reads the media type out of a data URL, or returns the
// fallback.
func MimeFromDataURL(dataURL, fallback string) string {
	if matches := dataURLRegex.FindStringSubmatch(strings.TrimSpace(dataURL)); len(matches) == 2 {
		return matches[1]
	}
	return fallback
}

func stripDataURLPrefix(value string) string {
	if idx := strings.IndexByte(value, ','); idx >= 0 {
		return value[idx+1:]
	}
	return value
}

func isUnknownFieldError(err error, field string) bool {
	message := err.Error()
	return strings.Contains(message, "Unknown name") && strings.Contains(message, field)
}

func containsAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
