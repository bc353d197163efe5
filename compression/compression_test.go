package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatedPayload() []byte {
	return bytes.Repeat([]byte("Hello, this is test data for compression!"), 100)
}

func TestCompress_Zstd_RoundTrip(t *testing.T) {
	data := repeatedPayload()

	compressed, err := Compress(data, Zstd, 6)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data))

	decompressed, err := Decompress(compressed, Zstd, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestCompress_LZ4_RoundTrip(t *testing.T) {
	data := repeatedPayload()

	compressed, err := Compress(data, LZ4, 0)
	require.NoError(t, err)

	decompressed, err := Decompress(compressed, LZ4, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestCompress_LZ4_IncompressibleFallsBackToRawStorage(t *testing.T) {
	// Tiny input that LZ4 cannot shrink: the raw-store path must still
	// round-trip correctly.
	data := []byte{0x01, 0x02}

	compressed, err := Compress(data, LZ4, 0)
	require.NoError(t, err)

	decompressed, err := Decompress(compressed, LZ4, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestCompress_Snappy_RoundTrip(t *testing.T) {
	data := repeatedPayload()

	compressed, err := Compress(data, Snappy, 0)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data))

	decompressed, err := Decompress(compressed, Snappy, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestCompress_UnsupportedAlgorithm(t *testing.T) {
	_, err := Compress([]byte("x"), Algorithm(99), 0)
	require.Error(t, err)

	var compErr *CompressionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "compress", compErr.Op)
}

func TestAlgorithm_String(t *testing.T) {
	assert.Equal(t, "zstd", Zstd.String())
	assert.Equal(t, "lz4", LZ4.String())
	assert.Equal(t, "snappy", Snappy.String())
}

func TestCompressionRatio(t *testing.T) {
	assert.InDelta(t, 0.6, CompressionRatio(1000, 400), 1e-9)
	assert.Equal(t, 0.0, CompressionRatio(1000, 1000))
	assert.Equal(t, 0.0, CompressionRatio(0, 0))
}
