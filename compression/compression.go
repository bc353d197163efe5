// Package compression provides a small, algorithm-agnostic wrapper around
// three third-party codecs (Zstandard, LZ4, Snappy), used by callers that
// want to shrink CRDT snapshots before shipping them over the wire or
// writing them to content-addressable storage. It has no dependency on
// the gocrdt package itself — a standalone collaborator, wired in from
// cmd/crdtdemo's compress subcommand.
package compression

import (
	"fmt"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm identifies a supported compression codec.
type Algorithm int

const (
	Zstd Algorithm = iota
	LZ4
	Snappy
)

// String renders the algorithm's canonical name.
func (a Algorithm) String() string {
	switch a {
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	case Snappy:
		return "snappy"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Compress encodes data with algo. level is meaningful only for Zstd, where
// it is a zstd level in [1, 22] mapped onto the library's own encoder
// level via zstd.EncoderLevelFromZstd; LZ4 and Snappy ignore it.
func Compress(data []byte, algo Algorithm, level int) ([]byte, error) {
	switch algo {
	case Zstd:
		return compressZstd(data, level)
	case LZ4:
		return compressLZ4(data)
	case Snappy:
		return compressSnappy(data), nil
	default:
		return nil, wrapError("compress", algo, fmt.Errorf("unsupported algorithm %d", int(algo)))
	}
}

// Decompress decodes data that was produced by Compress with the same
// algo. expectedSize is the original, uncompressed length; Zstd uses it as
// an allocation hint, LZ4 requires it exactly to size its output buffer,
// and Snappy ignores it (golang/snappy self-describes its decoded length).
func Decompress(data []byte, algo Algorithm, expectedSize int) ([]byte, error) {
	switch algo {
	case Zstd:
		return decompressZstd(data, expectedSize)
	case LZ4:
		return decompressLZ4(data, expectedSize)
	case Snappy:
		return decompressSnappy(data)
	default:
		return nil, wrapError("decompress", algo, fmt.Errorf("unsupported algorithm %d", int(algo)))
	}
}

func compressZstd(data []byte, level int) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, wrapError("compress", Zstd, err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

func decompressZstd(data []byte, expectedSize int) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, wrapError("decompress", Zstd, err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, make([]byte, 0, expectedSize))
	if err != nil {
		return nil, wrapError("decompress", Zstd, err)
	}
	return out, nil
}

// lz4RawMarker prefixes the payload with a single byte: 1 if the block
// that follows is genuinely LZ4-compressed, 0 if it is stored verbatim
// because the compressor judged the input incompressible (pierrec's
// CompressBlock returns n==0, not an error, in that case).
const (
	lz4StoredRaw   byte = 0
	lz4Compressed  byte = 1
	lz4HeaderBytes      = 1
)

func compressLZ4(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	dst := make([]byte, lz4HeaderBytes+bound)

	var c lz4.Compressor
	n, err := c.CompressBlock(data, dst[lz4HeaderBytes:])
	if err != nil {
		return nil, wrapError("compress", LZ4, err)
	}
	if n == 0 {
		out := make([]byte, lz4HeaderBytes+len(data))
		out[0] = lz4StoredRaw
		copy(out[lz4HeaderBytes:], data)
		return out, nil
	}

	dst[0] = lz4Compressed
	return dst[:lz4HeaderBytes+n], nil
}

func decompressLZ4(data []byte, expectedSize int) ([]byte, error) {
	if len(data) < lz4HeaderBytes {
		return nil, wrapError("decompress", LZ4, fmt.Errorf("truncated lz4 payload"))
	}
	marker, body := data[0], data[lz4HeaderBytes:]
	if marker == lz4StoredRaw {
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	}

	dst := make([]byte, expectedSize)
	n, err := lz4.UncompressBlock(body, dst)
	if err != nil {
		return nil, wrapError("decompress", LZ4, err)
	}
	return dst[:n], nil
}

func compressSnappy(data []byte) []byte {
	return snappy.Encode(nil, data)
}

func decompressSnappy(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, wrapError("decompress", Snappy, err)
	}
	return out, nil
}
