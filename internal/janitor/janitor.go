package janitor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"agent-sticker-kiosk/internal/session"
)

type Options struct {
	Sessions   *session.Store
	SessionTTL time.Duration
	LocalDir   string
	FileTTL    time.Duration
	Spec       string
	Logger     *slog.Logger
}

// Janitor periodically prunes idle kiosk sessions and aged local-fallback
// stickers.
type Janitor struct {
	cron       *cron.Cron
	sessions   *session.Store
	sessionTTL time.Duration
	localDir   string
	fileTTL    time.Duration
	logger     *slog.Logger
}

func New(opts Options) (*Janitor, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sessionTTL := opts.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}
	fileTTL := opts.FileTTL
	if fileTTL <= 0 {
		fileTTL = 24 * time.Hour
	}

	j := &Janitor{
		cron:       cron.New(),
		sessions:   opts.Sessions,
		sessionTTL: sessionTTL,
		localDir:   opts.LocalDir,
		fileTTL:    fileTTL,
		logger:     logger,
	}

	spec := opts.Spec
	if spec == "" {
		spec = "*/5 * * * *"
	}
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return nil, fmt.Errorf("schedule janitor: %w", err)
	}

	return j, nil
}

func (j *Janitor) Start() { j.cron.Start() }

func (j *Janitor) Stop() { j.cron.Stop() }

func (j *Janitor) run() {
	var g errgroup.Group

	g.Go(func() error {
		if j.sessions == nil {
			return nil
		}
		if n := j.sessions.PruneIdle(j.sessionTTL); n > 0 {
			j.logger.Info("pruned idle sessions", "count", n)
		}
		return nil
	})

	g.Go(func() error {
		n, err := j.pruneFiles()
		if n > 0 {
			j.logger.Info("pruned local stickers", "count", n)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		j.logger.Warn("janitor run failed", "err", err)
	}
}

func (j *Janitor) pruneFiles() (int, error) {
	if j.localDir == "" {
		return 0, nil
	}

	entries, err := os.ReadDir(j.localDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read local store: %w", err)
	}

	cutoff := time.Now().Add(-j.fileTTL)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(j.localDir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}
