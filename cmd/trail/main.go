// Package main is the entry point for the trail CLI, which records which
// files you touch inside a Git repository and ranks them by recency,
// frequency, or frecency.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
