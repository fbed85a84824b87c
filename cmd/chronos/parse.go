package main

import (
	"encoding/json"
	"fmt"

	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/mfjson"
	"github.com/chronodb/chronos/temporal"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "validate an MF-JSON document and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var doc mfjson.Document
			if err := json.Unmarshal(input, &doc); err != nil {
				return fmt.Errorf("%w: %v", errs.ErrBadMFJSON, err)
			}

			summary, err := summarize(kind, doc)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), summary)

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "float", "temporal value kind: bool|int|float|text|point")

	return cmd
}

func summarize(kind string, doc mfjson.Document) (string, error) {
	switch kind {
	case "bool":
		return summarizeSequence(doc, temporal.BoolTraits{})
	case "int":
		return summarizeSequence(doc, temporal.IntTraits{})
	case "float":
		return summarizeSequence(doc, temporal.FloatTraits{})
	case "text":
		return summarizeSequence(doc, temporal.TextTraits{})
	case "point":
		return summarizeSequence(doc, temporal.PointTraits{})
	default:
		return "", fmt.Errorf("%w: unknown kind %q", errs.ErrUnsupported, kind)
	}
}

func summarizeSequence[T any](doc mfjson.Document, traits temporal.ValueTraits[T]) (string, error) {
	seq, err := mfjson.ToSequence(doc, traits)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("type=%s interp=%s instants=%d start=%s end=%s",
		doc.Type, seq.Interp, seq.NumInstants(),
		seq.StartTime().Format("2006-01-02T15:04:05Z07:00"),
		seq.EndTime().Format("2006-01-02T15:04:05Z07:00")), nil
}
