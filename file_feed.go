package tether

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for file change events.
const DefaultDebounce = 100 * time.Millisecond

// FileFeed watches a file and emits its contents. The current contents are
// emitted immediately on Open; subsequent writes are debounced so editors
// that write in bursts produce a single payload.
type FileFeed struct {
	path     string
	debounce time.Duration
	clock    clockz.Clock
}

// NewFileFeed creates a FileFeed for the given path.
func NewFileFeed(path string) *FileFeed {
	return &FileFeed{
		path:     path,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
	}
}

// Debounce sets the coalescing window for change events. Returns the feed
// for chaining.
func (f *FileFeed) Debounce(d time.Duration) *FileFeed {
	f.debounce = d
	return f
}

// Clock sets a custom clock for debounce timers. Use clockz.FakeClock for
// deterministic tests. Returns the feed for chaining.
func (f *FileFeed) Clock(clock clockz.Clock) *FileFeed {
	f.clock = clock
	return f
}

// Open begins watching the file. The returned channel emits the file
// contents immediately and then after every debounced write or create
// event, and closes when ctx is canceled.
func (f *FileFeed) Open(ctx context.Context) (<-chan []byte, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(f.path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", f.path, err)
	}

	out := make(chan []byte)

	go func() {
		defer close(out)
		defer watcher.Close()

		if data, err := os.ReadFile(f.path); err == nil {
			select {
			case out <- data:
			case <-ctx.Done():
				return
			}
		}

		var (
			timer   clockz.Timer
			pending bool
		)

		for {
			var timerC <-chan time.Time
			if timer != nil {
				timerC = timer.C()
			}

			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				pending = true

				if timer == nil {
					timer = f.clock.NewTimer(f.debounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C():
						default:
						}
					}
					timer.Reset(f.debounce)
				}

			case <-timerC:
				if !pending {
					continue
				}
				pending = false
				data, err := os.ReadFile(f.path)
				if err != nil {
					continue
				}
				select {
				case out <- data:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Keep watching despite transient errors.
			}
		}
	}()

	return out, nil
}
