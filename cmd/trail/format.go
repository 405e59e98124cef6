package main

import (
	"os"
	"path/filepath"
)

// filterExisting drops paths that no longer exist on disk. Ranking output is
// purely data-driven; existence is a presentation concern applied here.
func filterExisting(paths []string) []string {
	kept := paths[:0]
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			kept = append(kept, p)
		}
	}
	return kept
}

// displayPath renders path for output: absolute as stored, or relative to
// workdir. When no relative form exists (different volume on Windows), the
// absolute path is printed instead.
func displayPath(path, workdir string, absolute bool) string {
	if absolute {
		return path
	}
	rel, err := filepath.Rel(workdir, path)
	if err != nil {
		return path
	}
	return rel
}

// canonicalPath makes p absolute against workdir and resolves symlinks, so
// the same file always stores under the same key.
func canonicalPath(p, workdir string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(workdir, p)
	}
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", err
	}
	return resolved, nil
}
