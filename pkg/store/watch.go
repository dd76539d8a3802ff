package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a sequence-tree change notification.
type EventType int

const (
	// EventFolderChanged indicates the files of the given effect folder
	// changed (sequence added, edited, renamed, or removed).
	EventFolderChanged EventType = iota

	// EventTreeInvalidated signals that the folder layout itself changed
	// (a folder appeared, vanished, or was renamed) and callers should
	// re-scan the document.
	EventTreeInvalidated
)

// Event is emitted by Watch when the sequence root changes on disk.
type Event struct {
	Type   EventType
	Folder string
}

// Watch streams change events for the sequence root until ctx is
// cancelled. Renames and edits done through the editor also surface
// here; consumers coalesce on their side. The channel is closed once ctx
// is done or the watcher hits an unrecoverable error.
func (p *persistence) Watch(ctx context.Context, root string) (<-chan Event, error) {
	if root == "" {
		return nil, errors.New("store: sequence root required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(root)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next
				// refresh re-scans anyway and this keeps filesystem storms
				// from blocking the watcher goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh to keep clients
				// in sync even when the change cannot be classified.
				throttle.Enqueue(Event{Type: EventTreeInvalidated}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					// A new directory is likely a new effect folder; watch
					// it so later file writes are seen too.
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
						throttle.Enqueue(Event{Type: EventTreeInvalidated}, send)
						continue
					}
				}

				folder := folderForPath(root, evt.Name)
				if folder == "" {
					throttle.Enqueue(Event{Type: EventTreeInvalidated}, send)
					continue
				}
				throttle.Enqueue(Event{Type: EventFolderChanged, Folder: folder}, send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be
// watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// folderForPath derives the effect-folder name from a changed path, or
// "" when the change happened at the root itself.
func folderForPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return ""
	}
	segments := filepath.ToSlash(rel)
	if i := strings.IndexByte(segments, '/'); i > 0 {
		return segments[:i]
	}
	// A direct child of the root: a folder event, not a file one.
	return ""
}

// eventThrottle coalesces rapid change notifications so consumers redraw
// once per burst of filesystem activity instead of on every write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		pending: make(map[EventType]map[string]struct{}),
		delay:   delay,
	}
}

// Enqueue records the event and (re)arms the flush timer; flush delivers
// one event per (type, folder) pair seen during the burst.
func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	folders, ok := t.pending[ev.Type]
	if !ok {
		folders = make(map[string]struct{})
		t.pending[ev.Type] = folders
	}
	folders[ev.Folder] = struct{}{}

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.flush(send)
	})
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.mu.Unlock()

	if folders, ok := pending[EventTreeInvalidated]; ok && len(folders) > 0 {
		send(Event{Type: EventTreeInvalidated})
		return
	}
	for folder := range pending[EventFolderChanged] {
		send(Event{Type: EventFolderChanged, Folder: folder})
	}
}

// Stop cancels any pending flush.
func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
