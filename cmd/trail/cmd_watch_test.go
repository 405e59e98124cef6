package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRepoWatcher_RecordsWrites(t *testing.T) {
	env := setupTestEnv(t)
	repo := testRepo(t, env)

	w := &repoWatcher{
		env:      env,
		repo:     repo,
		debounce: 50 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.run(ctx) }()

	// Give the watcher a moment to register the tree.
	time.Sleep(200 * time.Millisecond)

	writeFile(t, repo, "touched.go")

	// The debounced record lands asynchronously; poll for it.
	deadline := time.Now().Add(5 * time.Second)
	for {
		n, err := env.store.Count(ctx, repo)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n >= 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("watcher never recorded the write")
		}
		time.Sleep(20 * time.Millisecond)
	}

	paths, err := env.store.Recent(ctx, repo)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(paths) == 0 || filepath.Base(paths[0]) != "touched.go" {
		t.Errorf("expected touched.go recorded, got %v", paths)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRepoWatcher_Ignored(t *testing.T) {
	repo := t.TempDir()
	w := &repoWatcher{
		repo:   repo,
		ignore: []string{"*.log", "dist/*"},
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"plain source file", filepath.Join(repo, "main.go"), false},
		{"git internals", filepath.Join(repo, ".git", "index"), true},
		{"git dir itself", filepath.Join(repo, ".git"), true},
		{"log file via glob", filepath.Join(repo, "debug.log"), true},
		{"nested log file via base name", filepath.Join(repo, "sub", "debug.log"), true},
		{"dist output", filepath.Join(repo, "dist", "bundle.js"), true},
		{"outside the repo", string(filepath.Separator) + "elsewhere", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.ignored(tt.path); got != tt.want {
				t.Errorf("ignored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRepoWatcher_IgnoredFilesNotRecorded(t *testing.T) {
	env := setupTestEnv(t)
	repo := testRepo(t, env)
	env.cfg.Watch.Ignore = []string{"*.log"}

	w := &repoWatcher{
		env:      env,
		repo:     repo,
		debounce: 50 * time.Millisecond,
		ignore:   env.cfg.Watch.Ignore,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.run(ctx) }()

	time.Sleep(200 * time.Millisecond)

	writeFile(t, repo, "noise.log")
	writeFile(t, repo, "signal.go")

	deadline := time.Now().Add(5 * time.Second)
	for {
		n, err := env.store.Count(ctx, repo)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n >= 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("watcher never recorded signal.go")
		}
		time.Sleep(20 * time.Millisecond)
	}

	// Let any stray noise.log debounce fire before asserting.
	time.Sleep(200 * time.Millisecond)

	paths, err := env.store.Recent(ctx, repo)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	for _, p := range paths {
		if filepath.Base(p) == "noise.log" {
			t.Errorf("ignored file was recorded: %v", paths)
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRepoWatcher_NewDirectoryJoinsWatch(t *testing.T) {
	env := setupTestEnv(t)
	repo := testRepo(t, env)

	w := &repoWatcher{
		env:      env,
		repo:     repo,
		debounce: 50 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.run(ctx) }()

	time.Sleep(200 * time.Millisecond)

	sub := filepath.Join(repo, "newdir")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Give the watcher time to pick up the new directory.
	time.Sleep(300 * time.Millisecond)
	writeFile(t, repo, filepath.Join("newdir", "inner.go"))

	deadline := time.Now().Add(5 * time.Second)
	for {
		n, err := env.store.Count(ctx, repo)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n >= 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("watcher never recorded the file in the new directory")
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
}
