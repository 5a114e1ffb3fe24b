package sticker

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

var (
	ErrSourceLoad  = errors.New("source image load failed")
	ErrLabelRender = errors.New("label render failed")
)

// Source references the generated image to composite: raw bytes or a hosted
// URL, never both.
type Source struct {
	Bytes    []byte
	URL      string
	MimeType string
}

type Options struct {
	Label string
	Size  int
	Inset float64
}

// Artifact is the flattened sticker. Hash is the sha256 hex of Bytes and is
// the artifact's identity everywhere downstream.
type Artifact struct {
	Bytes    []byte
	Hash     string
	MimeType string
}

// Filename derives the content-addressed object name.
func (a *Artifact) Filename() string {
	return a.Hash + "." + extForMime(a.MimeType)
}

func extForMime(mime string) string {
	switch mime {
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}

type renderer interface {
	name() string
	render(c composition) (image.Image, error)
}

// composition is the resolved input handed to a renderer. frame may be nil.
type composition struct {
	src   image.Image
	frame image.Image
	label string
	size  int
	inset float64
}

type EngineOptions struct {
	HTTPClient *http.Client
	FramePath  string
	Logger     *slog.Logger
}

// Engine composites generated images into framed, labeled stickers. It holds
// no mutable state between calls and is safe for concurrent use.
type Engine struct {
	httpClient *http.Client
	frame      image.Image
	logger     *slog.Logger
	renderers  []renderer
}

func NewEngine(opts EngineOptions) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	var frame image.Image
	if opts.FramePath != "" {
		loaded, err := loadFrameFile(opts.FramePath)
		if err != nil {
			logger.Warn("frame asset unavailable, composing frameless", "path", opts.FramePath, "err", err)
		} else {
			frame = loaded
		}
	}

	return &Engine{
		httpClient: httpClient,
		frame:      frame,
		logger:     logger,
		renderers:  []renderer{canvasRenderer{}, rasterRenderer{}},
	}
}

// Compose flattens source, frame, and label into one square PNG artifact.
// Renderer failures degrade down a fixed chain: alternative renderer, then the
// same chain without the label, then the unmodified source. Only an unloadable
// source is fatal.
func (e *Engine) Compose(ctx context.Context, src Source, opts Options) (*Artifact, error) {
	size := opts.Size
	if size <= 0 {
		size = 1024
	}
	inset := opts.Inset
	if inset <= 0 || inset >= 0.5 {
		inset = 0.06
	}

	raw, srcImg, err := e.loadSource(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceLoad, err)
	}

	comp := composition{
		src:   srcImg,
		frame: e.frame,
		label: strings.TrimSpace(opts.Label),
		size:  size,
		inset: inset,
	}

	if art, ok := e.renderChain(comp); ok {
		return art, nil
	}

	if comp.label != "" {
		e.logger.Warn("all label strategies failed, composing without label")
		comp.label = ""
		if art, ok := e.renderChain(comp); ok {
			return art, nil
		}
	}

	// Last resort: hand back the source untouched.
	e.logger.Warn("composition failed entirely, returning unmodified source")
	mime := src.MimeType
	if mime == "" {
		mime = http.DetectContentType(raw)
	}
	return NewArtifact(raw, mime), nil
}

func (e *Engine) renderChain(comp composition) (*Artifact, bool) {
	for _, r := range e.renderers {
		img, err := r.render(comp)
		if err != nil {
			e.logger.Warn("renderer failed", "renderer", r.name(), "err", err)
			continue
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			e.logger.Warn("png encode failed", "renderer", r.name(), "err", err)
			continue
		}
		return NewArtifact(buf.Bytes(), "image/png"), true
	}
	return nil, false
}

// NewArtifact wraps raw image bytes with their content identity.
func NewArtifact(data []byte, mime string) *Artifact {
	sum := sha256.Sum256(data)
	return &Artifact{
		Bytes:    data,
		Hash:     hex.EncodeToString(sum[:]),
		MimeType: mime,
	}
}

const maxSourceBytes = 25 << 20

func (e *Engine) loadSource(ctx context.Context, src Source) ([]byte, image.Image, error) {
	raw := src.Bytes
	if len(raw) == 0 {
		if strings.TrimSpace(src.URL) == "" {
			return nil, nil, errors.New("source has neither bytes nor url")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("create request: %w", err)
		}
		resp, err := e.httpClient.Do(req)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch source: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return nil, nil, fmt.Errorf("fetch source: %s", resp.Status)
		}
		raw, err = io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
		if err != nil {
			return nil, nil, fmt.Errorf("read source: %w", err)
		}
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("decode source: %w", err)
	}
	return raw, img, nil
}
