// Package watch reloads a menu definition file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/metric"
)

// DefaultDebounce groups bursts of writes into a single reload.
const DefaultDebounce = 100 * time.Millisecond

// Reloader swaps the menu in a store whenever its file changes.
type Reloader struct {
	path     string
	store    *menu.Store
	reloads  metric.IncrementalCounter
	debounce time.Duration
	loaded   func(*menu.Builder)
}

// Option configures a Reloader.
type Option func(*Reloader)

// WithCounter counts reloads by outcome.
func WithCounter(c metric.IncrementalCounter) Option {
	return func(r *Reloader) {
		if c != nil {
			r.reloads = c
		}
	}
}

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) Option {
	return func(r *Reloader) { r.debounce = d }
}

// WithOnReload registers a callback invoked after each successful reload.
func WithOnReload(fn func(*menu.Builder)) Option {
	return func(r *Reloader) { r.loaded = fn }
}

// New returns a reloader for the menu file at path.
func New(path string, store *menu.Store, opts ...Option) *Reloader {
	r := &Reloader{
		path:     filepath.Clean(path),
		store:    store,
		reloads:  metric.Noop{},
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reload decodes the file and swaps it into the store. On failure the
// current menu stays in place.
func (r *Reloader) Reload() error {
	b, err := menu.LoadFile(r.path)
	if err != nil {
		r.reloads.Increment(metric.OutcomeError)
		return err
	}

	r.store.Swap(b)
	r.reloads.Increment(metric.OutcomeSuccess)
	slog.Info("menu reloaded", "file", r.path, "items", b.Len())

	if r.loaded != nil {
		r.loaded(b)
	}
	return nil
}

// Run watches the file until ctx is canceled. The parent directory is
// watched so editors that replace the file by rename are picked up.
func (r *Reloader) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(r.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", r.path, err)
	}

	slog.Info("watching menu file", "file", r.path)

	timer := time.NewTimer(r.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != r.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				timer.Reset(r.debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("menu watcher error", "error", err)
		case <-timer.C:
			if err := r.Reload(); err != nil {
				slog.Error("failed to reload menu", "file", r.path, "error", err)
			}
		}
	}
}
