package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports edits to spec and script files. Events are buffered;
// the game loop collects them with Drain between ticks.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan string
	errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		events:  make(chan string, 16),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

// Drain returns the changed files seen since the last call, without
// blocking, plus the first watcher error if any.
func (w *Watcher) Drain() ([]string, error) {
	if w == nil {
		return nil, nil
	}
	var (
		names []string
		err   error
		seen  = make(map[string]bool)
	)
	for {
		select {
		case name := <-w.events:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		case e := <-w.errors:
			if err == nil {
				err = e
			}
		default:
			return names, err
		}
	}
}

func (w *Watcher) run() {
	defer w.wg.Done()
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isWatchedFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < watchDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.events <- filepath.Base(event.Name):
			case <-w.closeCh:
				return
			default:
				// Full buffer: the loop will reload everything anyway.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isWatchedFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
