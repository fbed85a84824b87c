// Package hash provides xxHash64 helpers and an incremental Digest,
// adapted from arloliu-mebo's internal/hash (xxHash64-based metric
// identification) but repurposed from identifying a metric name to
// hashing a container's content. Its one user is set.Set.Hash; no Equal
// method in the module consults a hash.
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// String computes the xxHash64 of s.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Digest accumulates structural content incrementally, letting callers
// hash a container element-by-element without first flattening it into a
// single byte slice.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns a ready-to-use incremental digest.
func NewDigest() Digest {
	return Digest{d: xxhash.New()}
}

// WriteUint64 folds v into the digest.
func (h Digest) WriteUint64(v uint64) {
	var b [8]byte
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	_, _ = h.d.Write(b[:])
}

// WriteString folds s into the digest.
func (h Digest) WriteString(s string) {
	_, _ = h.d.WriteString(s)
}

// Sum64 returns the accumulated hash.
func (h Digest) Sum64() uint64 {
	return h.d.Sum64()
}
