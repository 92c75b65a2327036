// ABOUTME: Entry point for tracker CLI.
// ABOUTME: Configures logging and invokes the root Cobra command.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	level := slog.LevelWarn
	if os.Getenv("TRACKER_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
