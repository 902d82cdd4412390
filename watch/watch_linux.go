//go:build linux

package watch

import (
	"fmt"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// settle is how long writers get to finish after the first event
// before the batch reruns; it also coalesces editor save bursts.
const settle = 100 * time.Millisecond

// relevant are the event kinds that can change what a batch would
// compile.
const relevant = inotify.IN_CLOSE_WRITE | inotify.IN_CREATE | inotify.IN_MOVED_TO | inotify.IN_DELETE

// Watch runs one batch immediately, then blocks rerunning it after
// every relevant change under the watched directories. It only returns
// on a watcher setup failure.
func (w *Watcher) Watch() error {
	log := w.logger()

	watcher, err := inotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create inotify watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Warn("could not close watcher", "error", err)
		}
	}()

	watched := 0
	for _, root := range w.Dirs {
		for _, dir := range dirsToWatch(root, w.MaxDepth) {
			if _, err := watcher.Watch(dir); err != nil {
				log.Warn("could not watch directory", "dir", dir, "error", err)
				continue
			}
			watched++
		}
	}
	if watched == 0 {
		return fmt.Errorf("nothing to watch under %v with depth %d", w.Dirs, w.MaxDepth)
	}
	log.Info("watching for shader changes", "directories", watched)

	w.Rebuild()

	for {
		select {
		case ev := <-watcher.Event:
			if ev.Mask&relevant == 0 {
				continue
			}
			log.Debug("change detected", "name", ev.Name)
			time.Sleep(settle)
			drain(watcher)
			w.Rebuild()
		case err := <-watcher.Error:
			log.Warn("watcher error", "error", err)
		}
	}
}

// drain discards events that piled up during the settle window so one
// save burst triggers one rebuild.
func drain(watcher *inotify.Watcher) {
	for {
		select {
		case <-watcher.Event:
		default:
			return
		}
	}
}
