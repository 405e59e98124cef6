package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// insideRepo reports whether path sits under the repository root.
func insideRepo(path, repo string) bool {
	rel, err := filepath.Rel(repo, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// newRecordCmd creates the "trail record" subcommand.
func newRecordCmd(env *appEnv) *cobra.Command {
	var timeFlag string

	cmd := &cobra.Command{
		Use:   "record <path>...",
		Short: "Record a file access",
		Long:  "Record an access of each path at the current time.\nPaths outside the repository are skipped unless record.allow_outside is set.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := env.setup(ctx); err != nil {
				return fmt.Errorf("record: %w", err)
			}
			repo, err := env.repoRoot(ctx)
			if err != nil {
				return fmt.Errorf("record: %w", err)
			}

			var at time.Time
			if timeFlag != "" {
				parsed, parseErr := time.Parse(time.RFC3339, timeFlag)
				if parseErr != nil {
					return fmt.Errorf("record: invalid --time %q: %w", timeFlag, parseErr)
				}
				at = parsed
			}

			for _, arg := range args {
				path, canonErr := canonicalPath(arg, env.workdir)
				if canonErr != nil {
					slog.Warn("skipping unresolvable path", "path", arg, "err", canonErr)
					continue
				}
				if !env.cfg.Record.AllowOutside && !insideRepo(path, repo) {
					slog.Warn("skipping path outside repository", "path", path, "repo", repo)
					continue
				}
				if err := env.store.Record(ctx, repo, path, at); err != nil {
					return fmt.Errorf("record: %w", err)
				}
				slog.Debug("recorded access", "path", path, "repo", repo)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timeFlag, "time", "",
		"record as if accessed at this RFC 3339 instant")

	return cmd
}
