// Package watcher re-triggers work when catalog files change on disk.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/caiohportella/skillglyph/internal/infra/logger"
	"github.com/caiohportella/skillglyph/internal/ports"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

// FileWatcher watches the parent directories of a set of files and reports
// writes to those files. Editors that replace files by rename are covered.
type FileWatcher struct {
	debounce time.Duration
}

type Option func(*FileWatcher)

func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func New(opts ...Option) *FileWatcher {
	w := &FileWatcher{debounce: defaultDebounce}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ ports.CatalogWatcher = (*FileWatcher)(nil)

// Watch blocks until ctx is done. onChange runs at most once per debounce window per file.
func (w *FileWatcher) Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	if len(paths) == 0 {
		return errors.New("no files to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	targets := make(map[string]bool, len(paths))
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		targets[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
		logger.L().Debug("watcher.dir.added", "dir", dir)
	}

	deb := newDebouncer(w.debounce, func(path string) {
		if ctx.Err() == nil {
			onChange(path)
		}
	})
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !targets[name] {
				continue
			}
			logger.L().Debug("watcher.event", "file", name, "op", ev.Op.String())
			deb.fire(name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.L().Warn("watcher.error", "error", err)
		}
	}
}

// debouncer runs fn once per path after wait has passed without another fire.
// Each fire replaces the path's timer; a callback whose generation is no longer
// current returns without running fn.
type debouncer struct {
	wait time.Duration
	fn   func(path string)

	mu     sync.Mutex
	timers map[string]*time.Timer
	gen    map[string]uint64
}

func newDebouncer(wait time.Duration, fn func(path string)) *debouncer {
	return &debouncer{
		wait:   wait,
		fn:     fn,
		timers: map[string]*time.Timer{},
		gen:    map[string]uint64{},
	}
}

func (d *debouncer) fire(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[path]; ok {
		t.Stop()
	}
	d.gen[path]++
	g := d.gen[path]
	d.timers[path] = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		if d.gen[path] != g {
			d.mu.Unlock()
			return
		}
		delete(d.timers, path)
		d.mu.Unlock()
		d.fn(path)
	})
}

// stop cancels pending callbacks. Callbacks already past their generation check still run.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for path, t := range d.timers {
		t.Stop()
		d.gen[path]++
	}
	d.timers = map[string]*time.Timer{}
}
