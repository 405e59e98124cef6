package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-isatty"
)

func TestPickCmd_PipedFallsBackToPlainOutput(t *testing.T) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		t.Skip("stdout is a terminal; piped fallback not exercised")
	}

	env := setupTestEnv(t)
	repo := testRepoDir(t, env)
	writeFile(t, repo, "a.go")
	writeFile(t, repo, "b.go")

	record(t, env, "a.go", 48*time.Hour)
	record(t, env, "b.go", time.Hour)

	cmd := newPickCmd(env)
	var out strings.Builder
	cmd.SetOut(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("pick: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := []string{"b.go", "a.go"}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("expected %v, got %v", want, lines)
	}
}
