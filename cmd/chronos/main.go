// Package main implements the chronos CLI: MF-JSON/WKB conversion and
// grid tiling over temporal values, grounded in playbymail-ottomap's
// cobra command structure.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "chronos",
		Short:         "temporal/spatiotemporal value toolkit",
		Long:          "chronos converts temporal values between MF-JSON and WKB/HexWKB, and splits them across time/value grids.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLogLevel(logLevel),
			})))
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "logging level (debug|info|warn|error)")

	cmd.AddCommand(newParseCmd(), newEncodeCmd(), newDecodeCmd(), newTileCmd())

	return cmd
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
