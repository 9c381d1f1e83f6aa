// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compress(tb testing.TB, c Compression, src []byte) []byte {
	tb.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case CompressionEmpty, CompressionNone:
		return append([]byte(nil), src...)
	case CompressionSnappy:
		return snappy.Encode(nil, src)
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionZlib, CompressionDeflate:
		w = zlib.NewWriter(&buf)
	case CompressionSnappyFramed:
		w = snappy.NewBufferedWriter(&buf)
	case CompressionZstd:
		zw, err := zstd.NewWriter(&buf, zstd.WithEncoderConcurrency(1))
		require.NoError(tb, err)
		w = zw
	case CompressionLz4:
		w = lz4.NewWriter(&buf)
	default:
		tb.Fatalf("no writer for %q", c)
	}
	_, err := w.Write(src)
	require.NoError(tb, err)
	require.NoError(tb, w.Close())
	return buf.Bytes()
}

var allCompressions = []Compression{
	CompressionEmpty,
	CompressionNone,
	CompressionGzip,
	CompressionZlib,
	CompressionDeflate,
	CompressionSnappy,
	CompressionSnappyFramed,
	CompressionZstd,
	CompressionLz4,
}

func TestDecompressRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("severity_text=INFO body=hello "), 200)
	for _, c := range allCompressions {
		t.Run(fmt.Sprintf("compression=%q", c), func(t *testing.T) {
			compressed := compress(t, c, src)

			got, err := Decompress(c, nil, compressed, 0)
			require.NoError(t, err)
			assert.Equal(t, src, got)

			// A second call reuses the pooled reader.
			got, err = Decompress(c, got[:0], compressed, int64(len(src)))
			require.NoError(t, err)
			assert.Equal(t, src, got)
		})
	}
}

func TestDecompressAppendsToDst(t *testing.T) {
	src := []byte("payload")
	for _, c := range allCompressions {
		t.Run(fmt.Sprintf("compression=%q", c), func(t *testing.T) {
			dst := []byte("prefix-")
			got, err := Decompress(c, dst, compress(t, c, src), 0)
			require.NoError(t, err)
			assert.Equal(t, "prefix-payload", string(got))
		})
	}
}

func TestDecompressEmpty(t *testing.T) {
	for _, c := range allCompressions {
		t.Run(fmt.Sprintf("compression=%q", c), func(t *testing.T) {
			got, err := Decompress(c, nil, compress(t, c, nil), 0)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestDecompressTooLarge(t *testing.T) {
	src := bytes.Repeat([]byte{'a'}, 1024)
	for _, c := range allCompressions {
		t.Run(fmt.Sprintf("compression=%q", c), func(t *testing.T) {
			dst := []byte("keep")
			got, err := Decompress(c, dst, compress(t, c, src), 1023)
			require.ErrorIs(t, err, ErrPayloadTooLarge)
			assert.Equal(t, "keep", string(got))

			got, err = Decompress(c, nil, compress(t, c, src), 1024)
			require.NoError(t, err)
			assert.Len(t, got, 1024)
		})
	}
}

func TestDecompressMaxLimit(t *testing.T) {
	src := []byte("hello world")
	for _, c := range allCompressions {
		t.Run(fmt.Sprintf("compression=%q", c), func(t *testing.T) {
			got, err := Decompress(c, nil, compress(t, c, src), math.MaxInt64)
			require.NoError(t, err)
			assert.Equal(t, "hello world", string(got))
		})
	}
}

func TestDecompressCorrupt(t *testing.T) {
	garbage := []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8}
	for _, c := range allCompressions {
		if !c.IsCompressed() {
			continue
		}
		t.Run(fmt.Sprintf("compression=%q", c), func(t *testing.T) {
			_, err := Decompress(c, nil, garbage, 0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to decompress")
		})
	}
}

func TestDecompressUnsupported(t *testing.T) {
	_, err := Decompress("brotli", nil, []byte("x"), 0)
	require.EqualError(t, err, `unsupported compression type "brotli"`)
}

func BenchmarkDecompress(b *testing.B) {
	src := bytes.Repeat([]byte("severity_text=INFO body=hello "), 1000)
	for _, c := range []Compression{CompressionGzip, CompressionSnappy, CompressionZstd, CompressionLz4} {
		compressed := compress(b, c, src)
		b.Run(string(c), func(b *testing.B) {
			b.ReportAllocs()
			dst := make([]byte, 0, len(src))
			for b.Loop() {
				var err error
				dst, err = Decompress(c, dst[:0], compressed, 0)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
