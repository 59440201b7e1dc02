// Package watch invalidates cached catalog state when the content tree
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Invalidator receives change notifications scoped to a collection. The
// catalog's CachedService satisfies this.
type Invalidator interface {
	Invalidate(collection string)
	InvalidateAll()
}

// Watcher observes a content root and maps filesystem events onto collection
// invalidations. New sub-directories are added to the watch set as they
// appear.
type Watcher struct {
	basePath string
	target   Invalidator
	logger   interfaces.Logger
	fsw      *fsnotify.Watcher
}

// Option configures the watcher.
type Option func(*Watcher)

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New constructs a watcher over basePath reporting into target.
func New(basePath string, target Invalidator, opts ...Option) (*Watcher, error) {
	if target == nil {
		return nil, fmt.Errorf("watch: invalidator is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}

	w := &Watcher{
		basePath: filepath.Clean(basePath),
		target:   target,
		logger:   logging.NoOp(),
		fsw:      fsw,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	if err := w.addRecursive(w.basePath); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run processes events until the context is cancelled. It is intended to be
// launched on its own goroutine by the host.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) {
		// A new directory needs an explicit watch; files are covered by
		// their parent directory.
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				w.logger.Warn("watch new directory", "path", event.Name, "error", err)
			}
		}
	}

	collection := w.collectionOf(event.Name)
	if collection == "" {
		w.logger.Debug("content root changed, invalidating all collections", "path", event.Name)
		w.target.InvalidateAll()
		return
	}

	w.logger.Debug("content changed", "collection", collection, "path", event.Name, "op", event.Op.String())
	w.target.Invalidate(collection)
}

// collectionOf maps an absolute event path onto the first path segment under
// the content root.
func (w *Watcher) collectionOf(name string) string {
	rel, err := filepath.Rel(w.basePath, filepath.Clean(name))
	if err != nil || strings.HasPrefix(rel, "..") || rel == "." {
		return ""
	}
	rel = filepath.ToSlash(rel)
	if idx := strings.IndexByte(rel, '/'); idx > 0 {
		return rel[:idx]
	}
	// Top-level entries are collections themselves.
	return rel
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.fsw.Add(path); err != nil {
				return fmt.Errorf("watch: add %s: %w", path, err)
			}
		}
		return nil
	})
}

