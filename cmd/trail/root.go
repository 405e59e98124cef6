package main

import (
	"fmt"
	"log/slog"
	"os"

	"trail/internal/version"

	"github.com/spf13/cobra"
)

// newRootCmd creates the root trail command with all subcommands attached.
func newRootCmd() *cobra.Command {
	env := &appEnv{}

	cmd := &cobra.Command{
		Use:           "trail",
		Short:         "Track and rank file accesses inside a Git repository",
		Long:          "trail records which files you touch inside a Git repository and ranks\nthem by recency, frequency, or frecency for smart \"jump to recent file\"\nintegrations.",
		Version:       fmt.Sprintf("trail %s", version.String()),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(env.verbose)
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&env.repoFlag, "repo", "",
		"run as if started in this Git repository instead of the working directory")
	cmd.PersistentFlags().BoolVar(&env.verbose, "verbose", false,
		"enable debug logging")

	cmd.AddCommand(
		newRecordCmd(env),
		newForgetCmd(env),
		newRecentCmd(env),
		newFrequentCmd(env),
		newFrecentCmd(env),
		newPickCmd(env),
		newWatchCmd(env),
		newStatusCmd(env),
	)

	return cmd
}

// initLogging installs the process-wide slog handler: text on stderr, Warn
// by default, Debug with --verbose.
func initLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
