package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dnsimmons/strobego/strobe/kat"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <vector.json>...",
		Short: "Replay one or more JSON known-answer vectors and report any mismatch",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runVerify,
	}
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	var failed int
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read vector", "file", path, "error", err)
			failed++
			continue
		}

		head, err := kat.ParseVector(data)
		if err != nil {
			logger.Error("parse vector", "file", path, "error", err)
			failed++
			continue
		}

		if err := kat.Replay(head); err != nil {
			logger.Error("replay mismatch", "file", path, "error", err)
			failed++
			continue
		}

		logger.Info("vector ok", "file", path, "operations", len(head.Operations))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d vectors failed", failed, len(args))
	}
	return nil
}
