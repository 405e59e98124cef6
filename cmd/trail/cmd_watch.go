package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// newWatchCmd creates the "trail watch" subcommand.
func newWatchCmd(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the repository and record file writes automatically",
		Long:  "Watch the repository tree and record an access whenever a file is\nwritten or created. Runs in the foreground until interrupted.\nwatch.ignore globs from the config filter what gets recorded; .git/ is\nalways ignored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := env.setup(ctx); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			repo, err := env.repoRoot(ctx)
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}

			w := &repoWatcher{
				env:      env,
				repo:     repo,
				debounce: time.Duration(env.cfg.Watch.DebounceMS) * time.Millisecond,
				ignore:   env.cfg.Watch.Ignore,
			}
			slog.Info("watching repository", "repo", repo, "debounce", w.debounce)
			if err := w.run(ctx); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			return nil
		},
	}
}

// repoWatcher records debounced write events for one repository.
type repoWatcher struct {
	env      *appEnv
	repo     string
	debounce time.Duration
	ignore   []string

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// run watches the repository tree until ctx is cancelled.
func (w *repoWatcher) run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := w.addTree(watcher, w.repo); err != nil {
		return err
	}

	w.pending = make(map[string]*time.Timer)
	defer w.flush()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "err", err)
		}
	}
}

// addTree registers dir and every non-ignored subdirectory with the watcher.
func (w *repoWatcher) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Directory vanished mid-walk; nothing to watch there.
			return nil //nolint:nilerr // racing deletes are expected
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			slog.Warn("cannot watch directory", "dir", path, "err", err)
		}
		return nil
	})
}

// handle reacts to a single fsnotify event: new directories join the watch
// set, file writes and creates get scheduled for recording.
func (w *repoWatcher) handle(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	if w.ignored(event.Name) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		if event.Op.Has(fsnotify.Create) {
			if err := w.addTree(watcher, event.Name); err != nil {
				slog.Warn("cannot watch new directory", "dir", event.Name, "err", err)
			}
		}
		return
	}

	w.schedule(ctx, event.Name)
}

// schedule (re)arms the debounce timer for path; the access is recorded once
// the path has been quiet for the debounce window.
func (w *repoWatcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if err := w.env.store.Record(ctx, w.repo, path, time.Time{}); err != nil {
			slog.Warn("record from watch failed", "path", path, "err", err)
			return
		}
		slog.Debug("recorded access", "path", path)
	})
}

// flush cancels all pending debounce timers.
func (w *repoWatcher) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

// ignored reports whether path is excluded from watching: anything outside
// the repository, anything under .git/, plus the configured ignore globs,
// matched against the repo-relative path and its base name.
func (w *repoWatcher) ignored(path string) bool {
	rel, err := filepath.Rel(w.repo, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return true
	}
	if rel == ".git" || strings.HasPrefix(rel, ".git"+string(filepath.Separator)) {
		return true
	}
	for _, pattern := range w.ignore {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
