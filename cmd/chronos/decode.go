package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var kind string
	var rawBytes bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "decode a WKB/HexWKB payload into an MF-JSON document",
		Long:  "Read a WKB or HexWKB payload (file argument, or stdin) and write its MF-JSON document to stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out, err := decodeKind(kind, input, !rawBytes)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			slog.Debug("decoded sequence", "kind", kind, "bytes", len(input))

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "float", "temporal value kind: bool|int|float|text|point")
	cmd.Flags().BoolVar(&rawBytes, "raw", false, "input is raw WKB bytes instead of HexWKB text")

	return cmd
}
