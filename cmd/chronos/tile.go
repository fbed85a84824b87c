package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/mfjson"
	"github.com/chronodb/chronos/span"
	"github.com/chronodb/chronos/temporal"
	"github.com/chronodb/chronos/tile"
	"github.com/spf13/cobra"
)

func newTileCmd() *cobra.Command {
	var kind string
	var timeWidth, valueWidth float64
	var timeOrigin string

	cmd := &cobra.Command{
		Use:   "tile [file]",
		Short: "split an MF-JSON sequence across a time/value grid",
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

			origin, err := time.Parse(time.RFC3339, timeOrigin)
			if err != nil {
				return fmt.Errorf("%w: --time-origin: %v", errs.ErrBadMFJSON, err)
			}
			grid := tile.NewGrid(time.Duration(timeWidth*float64(time.Second)), origin, valueWidth, 0)

			out, err := tileDoc(kind, doc, grid)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			slog.Debug("split sequence", "kind", kind, "grid", grid.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "float", "temporal value kind: int|float")
	cmd.Flags().Float64Var(&timeWidth, "time-width", 60, "time bin width in seconds")
	cmd.Flags().Float64Var(&valueWidth, "value-width", 1, "value bin width")
	cmd.Flags().StringVar(&timeOrigin, "time-origin", "1970-01-01T00:00:00Z", "grid time origin (RFC3339)")

	return cmd
}

type fragmentSummary struct {
	TimeCoord  int64           `json:"time_coord"`
	ValueCoord int64           `json:"value_coord"`
	Sequence   mfjson.Document `json:"sequence"`
}

func tileDoc(kind string, doc mfjson.Document, grid tile.Grid) ([]byte, error) {
	switch kind {
	case "int":
		return tileSequence(doc, temporal.IntTraits{}, catalog.TagTInt, grid)
	case "float":
		return tileSequence(doc, temporal.FloatTraits{}, catalog.TagTFloat, grid)
	default:
		return nil, fmt.Errorf("%w: tiling supports only int|float, got %q", errs.ErrUnsupported, kind)
	}
}

func tileSequence[T span.Numeric](doc mfjson.Document, traits temporal.ValueTraits[T], tag catalog.Tag, grid tile.Grid) ([]byte, error) {
	seq, err := mfjson.ToSequence(doc, traits)
	if err != nil {
		return nil, err
	}

	fragments, err := tile.Split(seq, tag, grid)
	if err != nil {
		return nil, err
	}

	summaries := make([]fragmentSummary, len(fragments))
	for i, f := range fragments {
		fragDoc, err := mfjson.FromSequence(f.Sequence)
		if err != nil {
			return nil, err
		}
		summaries[i] = fragmentSummary{TimeCoord: f.TimeCoord, ValueCoord: f.ValueCoord, Sequence: fragDoc}
	}

	return json.MarshalIndent(summaries, "", "  ")
}
