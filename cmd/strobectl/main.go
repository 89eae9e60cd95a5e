// Command strobectl is a small operational front end for the strobe
// package: replaying known-answer vectors and printing the library's
// version identifier.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var jsonLogs bool

func newLogger() *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "strobectl",
		Short: "Replay and inspect STROBE protocol known-answer vectors",
	}
	root.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit structured JSON logs instead of text")

	root.AddCommand(newVerifyCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
