// Package watch reruns a shader batch whenever a source file under the
// watched directories changes. It exists for the edit/compile loop
// while authoring shaders; one-shot builds should run the batch
// directly.
//
// Watching is backed by inotify and therefore only available on Linux;
// elsewhere Watch returns an error immediately.
package watch

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
)

// Watcher reruns Rebuild after changes under Dirs.
type Watcher struct {
	// Dirs are the root directories to watch.
	Dirs []string

	// MaxDepth bounds which subdirectories are watched, with the same
	// convention as the compilation run: 0 watches nothing below a
	// root, so the roots themselves are only watched when MaxDepth
	// is at least 1.
	MaxDepth int

	// Rebuild runs one batch. It is called once before watching
	// starts and again after every change.
	Rebuild func()

	// Log receives progress and watcher errors. nil means
	// slog.Default().
	Log *slog.Logger
}

func (w *Watcher) logger() *slog.Logger {
	if w.Log != nil {
		return w.Log
	}
	return slog.Default()
}

// dirsToWatch lists every directory whose direct entries fall inside
// the depth bound: the root itself plus subdirectories strictly less
// than maxDepth levels below it. Unreadable directories are skipped;
// the compilation run reports those itself.
func dirsToWatch(root string, maxDepth int) []string {
	if maxDepth < 1 {
		return nil
	}
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		depth := 0
		if rel, err := filepath.Rel(root, path); err == nil && rel != "." {
			depth = strings.Count(rel, string(filepath.Separator)) + 1
		}
		if depth >= maxDepth {
			return fs.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs
}
