package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type LocalOptions struct {
	Dir        string
	PublicBase string
}

// LocalStore is the degraded-mode store: artifacts land in a local directory
// served by the kiosk's own file server, under the same content-addressed
// names the remote store would use.
type LocalStore struct {
	dir        string
	publicBase string
}

func NewLocal(opts LocalOptions) *LocalStore {
	return &LocalStore{
		dir:        opts.Dir,
		publicBase: strings.TrimRight(opts.PublicBase, "/"),
	}
}

func (s *LocalStore) Put(ctx context.Context, name string, data []byte, mime string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Object names are hex hashes plus an extension; reject anything that
	// could escape the directory.
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid object name %q", name)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create store dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}

	return s.publicBase + "/" + name, nil
}
