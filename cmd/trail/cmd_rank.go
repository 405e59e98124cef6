package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// rankKind selects one of the three orderings.
type rankKind string

const (
	rankRecent   rankKind = "recent"
	rankFrequent rankKind = "frequent"
	rankFrecent  rankKind = "frecent"
)

// rankedPaths runs the ranking query for kind, scoped to the current
// repository.
func rankedPaths(ctx context.Context, env *appEnv, kind rankKind, repo string) ([]string, error) {
	switch kind {
	case rankRecent:
		return env.store.Recent(ctx, repo)
	case rankFrequent:
		return env.store.Frequent(ctx, repo)
	case rankFrecent:
		return env.store.Frecent(ctx, repo, env.now())
	default:
		return nil, fmt.Errorf("unknown ranking %q", kind)
	}
}

// newRankCmd builds one of the three query subcommands; they differ only in
// the ordering they ask the store for.
func newRankCmd(env *appEnv, kind rankKind, short string) *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := env.setup(ctx); err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			repo, err := env.repoRoot(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}

			paths, err := rankedPaths(ctx, env, kind, repo)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}

			out := cmd.OutOrStdout()
			for _, path := range filterExisting(paths) {
				fmt.Fprintln(out, displayPath(path, env.workdir, absolute))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&absolute, "absolute", false, "print absolute paths")
	return cmd
}

// newRecentCmd creates the "trail recent" subcommand.
func newRecentCmd(env *appEnv) *cobra.Command {
	return newRankCmd(env, rankRecent, "Print most recently accessed paths")
}

// newFrequentCmd creates the "trail frequent" subcommand.
func newFrequentCmd(env *appEnv) *cobra.Command {
	return newRankCmd(env, rankFrequent, "Print most frequently accessed paths")
}

// newFrecentCmd creates the "trail frecent" subcommand.
func newFrecentCmd(env *appEnv) *cobra.Command {
	return newRankCmd(env, rankFrecent, "Print most frequent+recently accessed paths")
}
