package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newStatusCmd creates the "trail status" subcommand.
func newStatusCmd(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the resolved repository and store statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := env.setup(ctx); err != nil {
				return fmt.Errorf("status: %w", err)
			}
			repo, err := env.repoRoot(ctx)
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}

			accesses, err := env.store.Count(ctx, repo)
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}
			paths, err := env.store.CountPaths(ctx, repo)
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "repository: %s\n", repo)
			if env.dbPath != "" {
				fmt.Fprintf(out, "store:      %s\n", env.dbPath)
			}
			fmt.Fprintf(out, "accesses:   %d\n", accesses)
			fmt.Fprintf(out, "paths:      %d\n", paths)
			return nil
		},
	}
}
