//go:build !linux

package watch

import "errors"

// Watch is unavailable without inotify.
func (w *Watcher) Watch() error {
	return errors.New("watch mode requires inotify, which is only available on linux")
}
