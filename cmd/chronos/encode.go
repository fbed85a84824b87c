package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chronodb/chronos/internal/options"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var kind string
	var bigEndian, rawBytes bool

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "encode an MF-JSON document into WKB/HexWKB",
		Long:  "Read an MF-JSON document (file argument, or stdin) and write its WKB encoding to stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var opts []options.Option[*encodeConfig]
			if bigEndian {
				opts = append(opts, withBigEndian())
			}
			if rawBytes {
				opts = append(opts, withRawBytes())
			}

			cfg, err := newEncodeConfig(opts...)
			if err != nil {
				return err
			}

			out, err := encodeKind(kind, input, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			slog.Debug("encoded sequence", "kind", kind, "bytes", len(out))

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "float", "temporal value kind: bool|int|float|text|point")
	cmd.Flags().BoolVar(&bigEndian, "big-endian", false, "emit big-endian WKB instead of little-endian")
	cmd.Flags().BoolVar(&rawBytes, "raw", false, "emit raw WKB bytes instead of HexWKB text")

	return cmd
}

// readInput reads an argument file if given, otherwise the command's
// stdin (the real terminal, or a test harness's substitute reader).
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(args[0])
}
