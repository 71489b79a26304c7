package staticpress

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long the watcher waits for a burst of file events
// to settle before syncing. Editors often write a file in several steps.
const watchDebounce = 150 * time.Millisecond

// Serve runs the dev server on Config.Addr until ctx is done. Content and
// static changes are picked up by a file watcher; open pages reload
// themselves through /__reload.
func (a *App) Serve(ctx context.Context) error {
	if a.Config.PreviewSecret != "" && a.Config.SessionSecret == "" {
		return errors.New("staticpress: preview_secret requires session_secret")
	}
	a.dev = true
	stats, err := a.Sync()
	if err != nil {
		return err
	}
	a.log.Printf("indexed posts: %d added, %d updated, %d removed", stats.Added, stats.Updated, stats.Removed)
	a.enablePreview()
	a.setupMiddleware()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	for _, dir := range []string{a.Config.ContentDir, a.Config.StaticDir} {
		if err := a.watchTree(w, dir); err != nil {
			return err
		}
	}

	watchCtx, stop := context.WithCancel(ctx)
	defer stop()
	go a.watch(watchCtx, w)

	errc := make(chan error, 1)
	go func() {
		errc <- a.Echo.Start(a.Config.Addr)
	}()
	a.log.Printf("serving %s on %s", a.Config.Name, a.Config.Addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

// watchTree adds root and every directory below it to w. fsnotify
// watches are not recursive. A missing root is not an error.
func (a *App) watchTree(w *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && (strings.HasPrefix(d.Name(), ".") || a.ignored(p)) {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
}

// ignored reports whether p is inside the output directory or the
// directory of the build index, which the app writes itself.
func (a *App) ignored(p string) bool {
	for _, dir := range []string{a.Config.OutDir, filepath.Dir(a.Config.DatabasePath)} {
		if filepath.Clean(dir) != "." && within(dir, p) {
			return true
		}
	}
	return false
}

func (a *App) watch(ctx context.Context, w *fsnotify.Watcher) {
	var fire <-chan time.Time
	contentChanged := false
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod || a.ignored(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := a.watchTree(w, ev.Name); err != nil {
						a.log.Printf("watch: %v", err)
					}
				}
			}
			if within(a.Config.ContentDir, ev.Name) {
				contentChanged = true
			}
			fire = time.After(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			a.log.Printf("watch: %v", err)
		case <-fire:
			fire = nil
			if !contentChanged {
				a.touch()
				continue
			}
			contentChanged = false
			stats, err := a.Sync()
			if err != nil {
				a.log.Printf("watch: sync: %v", err)
				continue
			}
			a.log.Printf("content changed: %d added, %d updated, %d removed", stats.Added, stats.Updated, stats.Removed)
		}
	}
}

// within reports whether p is dir or below it.
func within(dir, p string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absP, err := filepath.Abs(p)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absP)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
