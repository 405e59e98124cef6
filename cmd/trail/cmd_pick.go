package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// newPickCmd creates the "trail pick" subcommand.
func newPickCmd(env *appEnv) *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a file from the frecency ranking",
		Long:  "Open a type-to-filter picker over the frecency ranking and print the\nselection to stdout, for use in shell command substitution. Off a\nterminal it degrades to plain frecent output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := env.setup(ctx); err != nil {
				return fmt.Errorf("pick: %w", err)
			}
			repo, err := env.repoRoot(ctx)
			if err != nil {
				return fmt.Errorf("pick: %w", err)
			}

			paths, err := env.store.Frecent(ctx, repo, env.now())
			if err != nil {
				return fmt.Errorf("pick: %w", err)
			}

			display := make([]string, 0, len(paths))
			for _, path := range filterExisting(paths) {
				display = append(display, displayPath(path, env.workdir, absolute))
			}

			out := cmd.OutOrStdout()

			// Piped output: behave like "trail frecent" so scripts keep working.
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				for _, p := range display {
					fmt.Fprintln(out, p)
				}
				return nil
			}

			if len(display) == 0 {
				return fmt.Errorf("pick: no recorded files in %s", repo)
			}

			// The UI draws on stderr so stdout carries only the selection.
			p := tea.NewProgram(newPickerModel(display), tea.WithOutput(os.Stderr))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("pick: %w", err)
			}

			model, ok := final.(pickerModel)
			if !ok || model.choice == "" {
				return fmt.Errorf("pick: nothing selected")
			}
			fmt.Fprintln(out, model.choice)
			return nil
		},
	}

	cmd.Flags().BoolVar(&absolute, "absolute", false, "print the absolute path")
	return cmd
}
