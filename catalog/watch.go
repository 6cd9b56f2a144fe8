package catalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is how often the polling fallback checks the file.
const DefaultPollInterval = 500 * time.Millisecond

// Watcher keeps a catalog in sync with its file. A reload that fails leaves
// the previous catalog in place.
type Watcher struct {
	path         string
	current      atomic.Pointer[Catalog]
	logger       *slog.Logger
	pollInterval time.Duration
	onReload     func(*Catalog)
}

// NewWatcher loads the catalog at path. It fails if the initial load fails.
func NewWatcher(path string) (*Watcher, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		path:         path,
		logger:       slog.Default(),
		pollInterval: DefaultPollInterval,
	}
	w.current.Store(c)
	return w, nil
}

// WithLogger sets the logger used for reload reports.
func (w *Watcher) WithLogger(logger *slog.Logger) *Watcher {
	if logger != nil {
		w.logger = logger
	}
	return w
}

// WithPollInterval sets the polling fallback interval.
func (w *Watcher) WithPollInterval(d time.Duration) *Watcher {
	if d > 0 {
		w.pollInterval = d
	}
	return w
}

// OnReload registers fn to be called after every successful reload.
// Must be set before Run.
func (w *Watcher) OnReload(fn func(*Catalog)) *Watcher {
	w.onReload = fn
	return w
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Catalog returns the most recently loaded catalog.
func (w *Watcher) Catalog() *Catalog {
	return w.current.Load()
}

// Reload loads the file now and swaps it in on success.
func (w *Watcher) Reload() error {
	c, err := Load(w.path)
	if err != nil {
		w.logger.Warn("catalog reload failed, keeping previous templates",
			slog.String("path", w.path),
			slog.Any("error", err))
		return err
	}

	w.current.Store(c)
	w.logger.Debug("catalog reloaded",
		slog.String("path", w.path),
		slog.Int("templates", c.Len()))
	if w.onReload != nil {
		w.onReload(c)
	}
	return nil
}

// Run watches the file until ctx is done. It uses fsnotify and falls back to
// polling when a watcher cannot be created. Run returns ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Debug("fsnotify unavailable, polling catalog", slog.Any("error", err))
		return w.runPolling(ctx)
	}
	defer watcher.Close()

	// Watch the directory so atomic saves (write then rename) are seen.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		w.logger.Debug("cannot watch catalog directory, polling",
			slog.String("path", w.path),
			slog.Any("error", err))
		return w.runPolling(ctx)
	}

	return w.runWatcher(ctx, watcher)
}

func (w *Watcher) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) error {
	baseName := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return ctx.Err()
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			_ = w.Reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return ctx.Err()
			}
			w.logger.Warn("catalog watcher error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) runPolling(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	lastMod, lastSize := w.stat()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			mod, size := w.stat()
			if mod.Equal(lastMod) && size == lastSize {
				continue
			}
			lastMod, lastSize = mod, size
			if size < 0 {
				continue
			}
			_ = w.Reload()
		}
	}
}

// stat returns the modification time and size of the file, or a size of -1
// when it cannot be read.
func (w *Watcher) stat() (time.Time, int64) {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}, -1
	}
	return info.ModTime(), info.Size()
}
