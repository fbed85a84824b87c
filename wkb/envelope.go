package wkb

import (
	"github.com/chronodb/chronos/format"
	"github.com/chronodb/chronos/internal/compress"
)

// CompressEnvelope compresses an already-encoded WKB payload (typically
// a Set/SpanSet/Sequence body) with the given algorithm, for callers
// that batch many payloads and want to shrink them before storage or
// transport. The WKB byte layout itself is unchanged; the compressed
// envelope is an opaque outer wrapper the caller must track the
// algorithm for (it is not self-describing).
func CompressEnvelope(data []byte, alg format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(alg)
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// DecompressEnvelope reverses CompressEnvelope.
func DecompressEnvelope(data []byte, alg format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(alg)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}
