package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/mfjson"
	"github.com/chronodb/chronos/temporal"
	"github.com/chronodb/chronos/wkb"
)

// encodeKind converts one MF-JSON document (read from raw) into its WKB
// wire form for the named temporal kind.
func encodeKind(kind string, raw []byte, cfg *encodeConfig) (string, error) {
	var doc mfjson.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrBadMFJSON, err)
	}

	switch kind {
	case "bool":
		return encodeSequence(doc, temporal.BoolTraits{}, catalog.TagTBool, cfg)
	case "int":
		return encodeSequence(doc, temporal.IntTraits{}, catalog.TagTInt, cfg)
	case "float":
		return encodeSequence(doc, temporal.FloatTraits{}, catalog.TagTFloat, cfg)
	case "text":
		return encodeSequence(doc, temporal.TextTraits{}, catalog.TagTText, cfg)
	case "point":
		return encodeSequence(doc, temporal.PointTraits{}, catalog.TagTGeomPoint, cfg)
	default:
		return "", fmt.Errorf("%w: unknown kind %q", errs.ErrUnsupported, kind)
	}
}

func encodeSequence[T any](doc mfjson.Document, traits temporal.ValueTraits[T], tag catalog.Tag, cfg *encodeConfig) (string, error) {
	seq, err := mfjson.ToSequence(doc, traits)
	if err != nil {
		return "", err
	}

	buf := wkb.WriteSequence(seq, tag, cfg.littleEndian)
	if !cfg.hex {
		return string(buf), nil
	}

	return wkb.ToHex(buf), nil
}

// decodeKind converts a WKB (or HexWKB) payload for the named temporal
// kind back into an MF-JSON document, pretty-printed.
func decodeKind(kind string, raw []byte, isHex bool) ([]byte, error) {
	data := raw
	if isHex {
		decoded, err := wkb.FromHex(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, err
		}
		data = decoded
	}

	switch kind {
	case "bool":
		return decodeSequence(data, temporal.BoolTraits{})
	case "int":
		return decodeSequence(data, temporal.IntTraits{})
	case "float":
		return decodeSequence(data, temporal.FloatTraits{})
	case "text":
		return decodeSequence(data, temporal.TextTraits{})
	case "point":
		return decodeSequence(data, temporal.PointTraits{})
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", errs.ErrUnsupported, kind)
	}
}

func decodeSequence[T any](data []byte, traits temporal.ValueTraits[T]) ([]byte, error) {
	seq, err := wkb.ReadSequence[T](data, traits)
	if err != nil {
		return nil, err
	}

	doc, err := mfjson.FromSequence(seq)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(doc, "", "  ")
}
