// Package gitrepo resolves the root of the enclosing Git repository. The root
// path is the partition key for everything the access log stores, so two
// invocations from different subdirectories of the same project must resolve
// to byte-identical strings; git rev-parse guarantees that.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Resolver reports the repository root enclosing dir.
// Abstracted as an interface so tests and the --repo override don't need a
// git binary.
type Resolver interface {
	Resolve(ctx context.Context, dir string) (string, error)
}

// NotARepositoryError indicates dir is not inside a Git repository.
// It enables typed error discrimination via errors.As.
type NotARepositoryError struct {
	Dir string
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("%s is not inside a git repository", e.Dir)
}

// Git resolves repository roots by invoking the git binary.
type Git struct{}

// Resolve runs git rev-parse --show-toplevel in dir and returns the trimmed
// output. A failing git exit status maps to *NotARepositoryError.
func (Git) Resolve(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &NotARepositoryError{Dir: dir}
		}
		return "", fmt.Errorf("run git rev-parse: %w", err)
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", &NotARepositoryError{Dir: dir}
	}
	return root, nil
}

// Fixed always resolves to Root. Used for the --repo override and in tests.
type Fixed struct {
	Root string
}

// Resolve returns the fixed root regardless of dir.
func (f Fixed) Resolve(context.Context, string) (string, error) {
	return f.Root, nil
}
