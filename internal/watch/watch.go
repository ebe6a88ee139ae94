// Package watch re-runs a callback whenever an input file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// Func is called after the watched file changed.
type Func func(ctx context.Context) error

// Watcher watches a single file through its parent directory, so that
// editors replacing the file by rename are still seen.
type Watcher struct {
	path     string
	fn       Func
	debounce time.Duration
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period after the last event before fn runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLogger sets the logger for watcher errors and callback failures.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New starts watching path. Events are only delivered once Run is called.
func New(path string, fn Func, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %s: %w", path, err)
	}

	w := &Watcher{
		path:     absPath,
		fn:       fn,
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(w)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	err = fw.Add(filepath.Dir(absPath))
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	w.watcher = fw

	return w, nil
}

// Run delivers change notifications until ctx is cancelled, then releases
// the underlying watcher. Callback errors are logged and do not stop Run.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("file watcher error", slog.String("error", err.Error()))

		case <-fire:
			fire = nil

			w.logger.Info("input changed", slog.String("path", w.path))

			if err := w.fn(ctx); err != nil {
				w.logger.Error("regeneration failed",
					slog.String("path", w.path),
					slog.String("error", err.Error()))
			}
		}
	}
}

// relevant accepts writes and creates of the watched file. A rename onto the
// file is reported as a create; a rename away from it is skipped.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Watch is New followed by Run.
func Watch(ctx context.Context, path string, fn Func, opts ...Option) error {
	w, err := New(path, fn, opts...)
	if err != nil {
		return err
	}

	return w.Run(ctx)
}
