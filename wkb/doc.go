// Package wkb implements the binary (WKB) and ASCII-hex (HexWKB) wire
// encodings for every chronos value type: a one-byte endianness header,
// a one-byte variation-flags byte, and a per-type payload layout,
// grounded in original_source's WKB family
// (meos/src/general/temporal_in.c / temporal_out.c's binary encode/decode
// pair and the flags-byte conventions `tbox_from_wkb`/`tbox_as_wkb` use)
// and in arloliu-mebo's header/flags-byte framing style
// (section.NumericFlag / section.TextFlag): one packed flags byte ahead
// of a type-specific body, read once and dispatched on.
//
// Geometry/geography payloads are NOT delegated to a host WKB codec here
// (no host geometry library is wired into chronos); a geom.Point is
// written as its raw X, Y, [Z] IEEE-754 doubles plus a HasZ byte, which
// is a strict subset of real point WKB and is not wire-compatible with
// a general OGC WKB reader. A production build would substitute the
// host library's point WKB codec at this seam.
//
// CompressEnvelope/DecompressEnvelope wrap an already-encoded payload in
// one of internal/compress's codecs for bulk storage or transport; the
// WKB byte layout inside the envelope is unchanged.
package wkb
