// Package submit drives a composed sticker through storage upload and
// workflow notification, at most once per artifact per session.
package submit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"agent-sticker-kiosk/internal/session"
	"agent-sticker-kiosk/internal/sticker"
	"agent-sticker-kiosk/internal/storage"
	"agent-sticker-kiosk/internal/workflow"
)

var ErrUploadFailed = errors.New("sticker upload failed")

// WarnNotNotified is surfaced when the sticker is durably stored but the
// downstream automation did not fire.
const WarnNotNotified = "saved but not notified"

type Meta struct {
	Email     string
	Name      string
	Timestamp string
	Archetype string
	Survey    map[string]string
}

type Result struct {
	OK       bool   `json:"ok"`
	ImageURL string `json:"imageUrl,omitempty"`
	Warning  string `json:"warning,omitempty"`
	Skipped  bool   `json:"skipped,omitempty"`
	// Response carries the workflow endpoint's reply verbatim.
	Response string `json:"response,omitempty"`
}

type Options struct {
	Sessions *session.Store
	Store    storage.ObjectStore
	Notifier *workflow.Notifier
	Logger   *slog.Logger
}

type Coordinator struct {
	sessions *session.Store
	store    storage.ObjectStore
	notifier *workflow.Notifier
	logger   *slog.Logger
}

func New(opts Options) *Coordinator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Coordinator{
		sessions: opts.Sessions,
		store:    opts.Store,
		notifier: opts.Notifier,
		logger:   logger,
	}
}

// Submit uploads the artifact under its content-derived name and notifies the
// workflow endpoint. The submission mark is taken before the upload starts, so
// a second call for the same artifact short-circuits without touching the
// network. Upload failure rolls the mark back; notify failure does not.
func (c *Coordinator) Submit(ctx context.Context, sessionID string, art *sticker.Artifact, meta Meta) (Result, error) {
	hash := art.Hash

	epoch, status := c.sessions.TryMark(sessionID, hash)
	if status == session.AlreadySubmitted {
		c.logger.Info("duplicate submission skipped", "session", sessionID, "hash", hash)
		return Result{OK: true, Skipped: true}, nil
	}

	url, err := c.store.Put(ctx, art.Filename(), art.Bytes, art.MimeType)
	if err != nil {
		c.sessions.Unmark(sessionID, epoch, hash)
		return Result{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if c.notifier == nil || !c.notifier.Configured() {
		c.logger.Warn("no workflow target, sticker stored without notification", "hash", hash)
		return Result{OK: true, ImageURL: url, Warning: WarnNotNotified}, nil
	}

	payload := workflow.Payload{
		Email:     meta.Email,
		Name:      meta.Name,
		Timestamp: meta.Timestamp,
		Sticker:   url,
		Archetype: meta.Archetype,
		Survey:    meta.Survey,
	}
	body, err := c.notifier.Notify(ctx, payload)
	if err != nil {
		// The sticker is already durable; the mark stays.
		c.logger.Warn("workflow notification failed", "hash", hash, "err", err)
		return Result{OK: true, ImageURL: url, Warning: WarnNotNotified}, nil
	}

	return Result{OK: true, ImageURL: url, Response: string(body)}, nil
}
