package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		workdir  string
		absolute bool
		want     string
	}{
		{"relative by default", "/repo/src/a.go", "/repo", false, filepath.Join("src", "a.go")},
		{"parent traversal", "/repo/a.go", "/repo/src", false, filepath.Join("..", "a.go")},
		{"absolute flag", "/repo/src/a.go", "/repo", true, "/repo/src/a.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayPath(tt.path, tt.workdir, tt.absolute); got != tt.want {
				t.Errorf("displayPath(%q, %q, %v) = %q, want %q",
					tt.path, tt.workdir, tt.absolute, got, tt.want)
			}
		})
	}
}

func TestInsideRepo(t *testing.T) {
	tests := []struct {
		name string
		path string
		repo string
		want bool
	}{
		{"direct child", "/repo/a.go", "/repo", true},
		{"nested", "/repo/x/y/a.go", "/repo", true},
		{"the root itself", "/repo", "/repo", true},
		{"sibling", "/repo2/a.go", "/repo", false},
		{"sibling with shared prefix", "/repository/a.go", "/repo", false},
		{"parent", "/a.go", "/repo", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := insideRepo(tt.path, tt.repo); got != tt.want {
				t.Errorf("insideRepo(%q, %q) = %v, want %v", tt.path, tt.repo, got, tt.want)
			}
		})
	}
}

func TestCanonicalPath(t *testing.T) {
	dir := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	file := filepath.Join(dir, "a.go")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Run("relative paths join the working directory", func(t *testing.T) {
		got, err := canonicalPath("a.go", dir)
		if err != nil {
			t.Fatalf("canonical: %v", err)
		}
		if got != file {
			t.Errorf("expected %q, got %q", file, got)
		}
	})

	t.Run("symlinks resolve to their target", func(t *testing.T) {
		link := filepath.Join(dir, "link.go")
		if err := os.Symlink(file, link); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
		got, err := canonicalPath(link, dir)
		if err != nil {
			t.Fatalf("canonical: %v", err)
		}
		if got != file {
			t.Errorf("expected symlink to resolve to %q, got %q", file, got)
		}
	})

	t.Run("missing paths error", func(t *testing.T) {
		if _, err := canonicalPath("missing.go", dir); err == nil {
			t.Fatal("expected error for missing path")
		}
	})
}

func TestFilterExisting(t *testing.T) {
	dir := t.TempDir()
	exists := filepath.Join(dir, "a.go")
	if err := os.WriteFile(exists, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := filterExisting([]string{exists, filepath.Join(dir, "gone.go")})
	if len(got) != 1 || got[0] != exists {
		t.Errorf("expected [%s], got %v", exists, got)
	}
}
