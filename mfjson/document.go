// Package mfjson implements the Moving Features JSON representation of
// temporal values: `type` one of MovingBoolean/MovingInteger/
// MovingFloat/MovingText/MovingPoint, `coordinates` (spatial) or
// `values` (non-spatial), parallel `datetimes`, and optional
// `interpolation`/`lower_inc`/`upper_inc`/`crs` fields, per the wire
// format temporal values use alongside WKB/HexWKB and canonical text.
//
// No third-party JSON library is wired here: the document shape is a
// flat, stable struct with no need for streaming, schema validation, or
// custom tag dialects that encoding/json doesn't already provide, and no
// example repo in the corpus ships a JSON library suited to this (small,
// already-typed) payload.
package mfjson

import "strconv"

// Document is the MF-JSON representation of one temporal Sequence.
type Document struct {
	Type string `json:"type"`

	// Coordinates holds spatial payloads ([x,y] or [x,y,z] per point);
	// Values holds non-spatial scalar payloads. Exactly one is set.
	Coordinates [][]float64 `json:"coordinates,omitempty"`
	Values      []any       `json:"values,omitempty"`

	Datetimes []string `json:"datetimes"`

	Interpolation string `json:"interpolation,omitempty"`
	LowerInc      *bool  `json:"lower_inc,omitempty"`
	UpperInc      *bool  `json:"upper_inc,omitempty"`

	CRS *CRS `json:"crs,omitempty"`
}

// CRS is the coordinate reference system block for spatial documents.
type CRS struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

// NamedCRS builds the common "name"-type CRS block chronos emits for a
// known SRID (urn:ogc:def:crs:EPSG::<srid>).
func NamedCRS(srid int32) *CRS {
	return &CRS{
		Type: "name",
		Properties: map[string]any{
			"name": ogcSRIDName(srid),
		},
	}
}

func ogcSRIDName(srid int32) string {
	if srid == 0 {
		return "urn:ogc:def:crs:OGC::unknown"
	}

	return "urn:ogc:def:crs:EPSG::" + strconv.Itoa(int(srid))
}
