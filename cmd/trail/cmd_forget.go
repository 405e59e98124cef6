package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
)

// newForgetCmd creates the "trail forget" subcommand.
func newForgetCmd(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "forget <path>...",
		Short: "Forget every recorded access of the given paths",
		Long:  "Delete all recorded accesses of each path in the current repository.\nPaths that no longer exist on disk can still be forgotten; unrecorded\npaths are a no-op.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := env.setup(ctx); err != nil {
				return fmt.Errorf("forget: %w", err)
			}
			repo, err := env.repoRoot(ctx)
			if err != nil {
				return fmt.Errorf("forget: %w", err)
			}

			for _, arg := range args {
				// The file may be deleted already; fall back to the literal
				// input made absolute so its stored key still matches.
				path, canonErr := canonicalPath(arg, env.workdir)
				if canonErr != nil {
					if filepath.IsAbs(arg) {
						path = filepath.Clean(arg)
					} else {
						path = filepath.Join(env.workdir, arg)
					}
					slog.Debug("forgetting unresolvable path by literal key", "path", path)
				}
				if err := env.store.Forget(ctx, repo, path); err != nil {
					return fmt.Errorf("forget: %w", err)
				}
			}
			return nil
		},
	}
}
