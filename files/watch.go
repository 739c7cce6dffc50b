package files

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

var (
	// ErrWatcherStarted is returned by Start on a running watcher.
	ErrWatcherStarted = errors.New("files: watcher already started")
	// ErrWatcherStopped is returned by Start after Stop.
	ErrWatcherStopped = errors.New("files: watcher stopped")
)

// Op is a bit set of coalesced filesystem operations.
type Op = fsnotify.Op

// Event is one debounced change: all operations seen on Path during the
// debounce window, OR-ed together.
type Event struct {
	Path string
	Op   Op
	At   time.Time // time of the last raw event
}

// WatchOptions configures a Watcher.
type WatchOptions struct {
	Debounce time.Duration
	Filter   func(path string) bool // nil accepts everything
	Logger   *zap.Logger
	Buffer   int // capacity of the Events channel
}

// WatchOption mutates WatchOptions.
type WatchOption func(*WatchOptions)

// DefaultWatchOptions: 200ms debounce, 64 buffered events, no logging.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{Debounce: 200 * time.Millisecond, Logger: zap.NewNop(), Buffer: 64}
}

// WithDebounce sets the quiet period before an event is emitted.
// Panics if d is negative.
func WithDebounce(d time.Duration) WatchOption {
	if d < 0 {
		panic("files: WithDebounce(d) requires d >= 0")
	}
	return func(o *WatchOptions) { o.Debounce = d }
}

// WithFilter drops events whose path does not satisfy keep.
func WithFilter(keep func(path string) bool) WatchOption {
	return func(o *WatchOptions) { o.Filter = keep }
}

// WithLogger routes watcher diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) WatchOption {
	if l == nil {
		panic("files: WithLogger(nil)")
	}
	return func(o *WatchOptions) { o.Logger = l }
}

// Watcher coalesces fsnotify events per path.
type Watcher struct {
	opts    WatchOptions
	fsw     *fsnotify.Watcher
	events  chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	pending map[string]Event
	started bool
	stopped bool
}

// NewWatcher creates an idle watcher. Call Add, then Start.
func NewWatcher(opts ...WatchOption) (*Watcher, error) {
	o := DefaultWatchOptions()
	for _, fn := range opts {
		fn(&o)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		opts:    o,
		fsw:     fsw,
		events:  make(chan Event, o.Buffer),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		pending: make(map[string]Event),
	}, nil
}

// Add starts watching paths (files or directories, non-recursive).
func (w *Watcher) Add(paths ...string) error {
	for _, p := range paths {
		if err := w.fsw.Add(p); err != nil {
			return classify(err)
		}
		w.opts.Logger.Debug("watching", zap.String("path", p))
	}
	return nil
}

// Events delivers debounced events. It is closed after Stop or when the
// Start context ends.
func (w *Watcher) Events() <-chan Event { return w.events }

// Start runs the event loop in a goroutine until ctx ends or Stop.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrWatcherStopped
	}
	if w.started {
		return ErrWatcherStarted
	}
	w.started = true
	go w.run(ctx)
	return nil
}

// Stop ends the loop, waits for it and releases the fsnotify handle.
// Stop is idempotent.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	started := w.started
	w.mu.Unlock()

	close(w.stopCh)
	if started {
		<-w.doneCh
	} else {
		close(w.events)
	}
	return w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.events)

	tick := w.opts.Debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.record(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.opts.Logger.Warn("watch error", zap.Error(err))
		case now := <-ticker.C:
			if !w.flush(ctx, now) {
				return
			}
		}
	}
}

func (w *Watcher) record(ev fsnotify.Event) {
	if w.opts.Filter != nil && !w.opts.Filter(ev.Name) {
		return
	}
	w.mu.Lock()
	p := w.pending[ev.Name]
	p.Path = ev.Name
	p.Op |= ev.Op
	p.At = time.Now()
	w.pending[ev.Name] = p
	w.mu.Unlock()
	w.opts.Logger.Debug("raw event", zap.String("path", ev.Name), zap.Stringer("op", ev.Op))
}

// flush emits events quiet for at least Debounce. It reports false when
// the loop must exit.
func (w *Watcher) flush(ctx context.Context, now time.Time) bool {
	w.mu.Lock()
	var ready []Event
	for path, ev := range w.pending {
		if now.Sub(ev.At) >= w.opts.Debounce {
			ready = append(ready, ev)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, ev := range ready {
		select {
		case w.events <- ev:
		case <-ctx.Done():
			return false
		case <-w.stopCh:
			return false
		}
	}
	return true
}
