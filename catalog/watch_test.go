package catalog

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneTemplate = `
templates:
  greeting:
    pattern: "Hello, { name }!"
`

const twoTemplates = `
templates:
  greeting:
    pattern: "Hi, { name }!"
  farewell:
    pattern: "Bye, { name }!"
`

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	writeCatalog(t, path, oneTemplate)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())
	assert.Equal(t, []string{"greeting"}, w.Catalog().Names())

	_, err = NewWatcher(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWatcher_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	writeCatalog(t, path, oneTemplate)

	var logs bytes.Buffer
	reloads := 0
	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))).
		OnReload(func(*Catalog) { reloads++ })

	writeCatalog(t, path, twoTemplates)
	require.NoError(t, w.Reload())
	assert.Equal(t, 2, w.Catalog().Len())
	assert.Equal(t, 1, reloads)

	got, err := w.Catalog().Render("greeting", map[string]string{"name": "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "Hi, Ana!", got)

	// A broken file keeps the last good catalog.
	writeCatalog(t, path, "templates: [")
	assert.Error(t, w.Reload())
	assert.Equal(t, 2, w.Catalog().Len())
	assert.Equal(t, 1, reloads)
	assert.Contains(t, logs.String(), "catalog reload failed")
}

func TestWatcher_Run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	writeCatalog(t, path, oneTemplate)

	w, err := NewWatcher(path)
	require.NoError(t, err)

	reloaded := make(chan *Catalog, 8)
	w.OnReload(func(c *Catalog) {
		select {
		case reloaded <- c:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Keep rewriting until the watcher reports the change; the first write
	// can land before the watch is registered.
	require.Eventually(t, func() bool {
		writeCatalog(t, path, twoTemplates)
		select {
		case c := <-reloaded:
			return c.Len() == 2
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, w.Catalog().Len())

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_Polling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	writeCatalog(t, path, oneTemplate)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.WithPollInterval(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.runPolling(ctx) }()

	// The polling loop takes its baseline when it starts, so keep writing
	// content of a different size until the change is seen.
	writes := 0
	require.Eventually(t, func() bool {
		writes++
		writeCatalog(t, path, twoTemplates+strings.Repeat("\n", writes%2+1))
		return w.Catalog().Len() == 2
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
