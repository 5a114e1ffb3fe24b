package storage

import (
	"context"
	"log/slog"
)

// FallbackStore tries the primary store and degrades to the secondary when the
// primary is unavailable. Both stores see the same content-addressed names.
type FallbackStore struct {
	primary   ObjectStore
	secondary ObjectStore
	logger    *slog.Logger
}

func NewFallback(primary, secondary ObjectStore, logger *slog.Logger) *FallbackStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackStore{primary: primary, secondary: secondary, logger: logger}
}

func (s *FallbackStore) Put(ctx context.Context, name string, data []byte, mime string) (string, error) {
	url, err := s.primary.Put(ctx, name, data, mime)
	if err == nil {
		return url, nil
	}
	if ctx.Err() != nil {
		return "", err
	}

	s.logger.Warn("primary store failed, using local fallback", "name", name, "err", err)
	return s.secondary.Put(ctx, name, data, mime)
}
