package wkb

import (
	"encoding/hex"
	"strings"

	"github.com/chronodb/chronos/errs"
)

// ToHex uppercase-hex-encodes a WKB byte stream (HexWKB).
func ToHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// FromHex decodes a HexWKB string back into its WKB byte stream.
// Case-insensitive, matching common WKB producers that emit lowercase.
func FromHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errs.ErrBadHexWKB
	}

	return data, nil
}
