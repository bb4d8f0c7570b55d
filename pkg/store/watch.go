package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventKeyChanged indicates the value stored under Key was written or erased.
	EventKeyChanged EventType = iota

	// EventInvalidated signals that the store changed in a way that could not
	// be attributed to a single key and callers should reload everything.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// ErrWatchUnsupported is returned by backends that cannot observe changes.
var ErrWatchUnsupported = errors.New("store: watch not supported by backend")

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid dropping events. The channel is closed once ctx is
// done or the watcher encounters an unrecoverable error.
func (p *diskvPersistence) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 64)
	go p.watchLoop(ctx, watcher, events)
	return events, nil
}

// watchDebounce is how long a burst of filesystem activity may run before
// the collected keys are reported.
const watchDebounce = 100 * time.Millisecond

// changeSet collects the keys touched during one debounce window.
type changeSet struct {
	keys        map[string]struct{}
	invalidated bool
}

func (c *changeSet) add(key string) {
	if key == "" {
		c.invalidated = true
		return
	}
	if c.keys == nil {
		c.keys = make(map[string]struct{})
	}
	c.keys[key] = struct{}{}
}

// drain returns the pending events in key order and resets the set. A
// pending invalidation comes first.
func (c *changeSet) drain() []Event {
	var out []Event
	if c.invalidated {
		out = append(out, Event{Type: EventInvalidated})
	}
	keys := make([]string, 0, len(c.keys))
	for k := range c.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, Event{Type: EventKeyChanged, Key: k})
	}
	*c = changeSet{}
	return out
}

func (p *diskvPersistence) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- Event) {
	defer close(events)
	defer func() {
		if err := watcher.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
		}
	}()

	var (
		pending changeSet
		flush   <-chan time.Time
	)
	queue := func(key string) {
		pending.add(key)
		if flush == nil {
			flush = time.After(watchDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
			queue("")
		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if evt.Op == fsnotify.Chmod {
				continue
			}
			if key := p.keyForPath(evt.Name); key != "" {
				queue(key)
			}
		case <-flush:
			flush = nil
			for _, ev := range pending.drain() {
				select {
				case events <- ev:
				default:
					// Full; the consumer reloads on the next event anyway.
				}
			}
		}
	}
}
