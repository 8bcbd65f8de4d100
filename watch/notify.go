package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/dylan/gitscribe/scribe"
)

// debounceDelay batches a burst of filesystem events into one wake-up.
const debounceDelay = 2 * time.Second

// Trigger wakes the loop early when files change instead of waiting out
// the full poll interval. The poll cadence stays authoritative; the
// trigger only shortens the sleep.
type Trigger struct {
	C chan struct{}

	root    string
	ignore  []string
	watcher *fsnotify.Watcher
	log     *zap.Logger
}

// NewTrigger watches every directory under root, skipping .git and other
// dot-directories so the loop's own commits never wake it, and skipping
// directories matching an ignore glob so changes the collector would drop
// never wake it either.
func NewTrigger(root string, ignore []string, log *zap.Logger) (*Trigger, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	t := &Trigger{
		C:       make(chan struct{}, 1),
		root:    root,
		ignore:  ignore,
		watcher: watcher,
		log:     log,
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (strings.HasPrefix(d.Name(), ".") || t.ignored(path)) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if walkErr != nil {
		watcher.Close()
		return nil, walkErr
	}

	return t, nil
}

// ignored reports whether the repo-relative form of path matches one of
// the configured ignore globs.
func (t *Trigger) ignored(path string) bool {
	rel, err := filepath.Rel(t.root, path)
	if err != nil {
		return false
	}
	return scribe.Ignored(rel, t.ignore)
}

// Run pumps filesystem events into debounced wake-ups until ctx is
// cancelled. Events on ignored paths are dropped.
func (t *Trigger) Run(ctx context.Context) {
	debounce := time.NewTimer(debounceDelay)
	debounce.Stop()

	for {
		select {
		case ev := <-t.watcher.Events:
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if t.ignored(ev.Name) {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				t.maybeWatch(ev.Name)
			}
			debounce.Reset(debounceDelay)
		case err := <-t.watcher.Errors:
			t.log.Warn("filesystem watch error", zap.Error(err))
		case <-debounce.C:
			select {
			case t.C <- struct{}{}:
			default:
			}
		case <-ctx.Done():
			t.watcher.Close()
			return
		}
	}
}

// maybeWatch adds newly created directories to the watch set, under the
// same skip rules as the initial walk.
func (t *Trigger) maybeWatch(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if strings.HasPrefix(filepath.Base(path), ".") || t.ignored(path) {
		return
	}
	if err := t.watcher.Add(path); err != nil {
		t.log.Debug("watch add failed", zap.String("path", path), zap.Error(err))
	}
}
