// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package payload // import "go.opentelemetry.io/collector/logsview/payload"

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrPayloadTooLarge is returned when a payload decompresses to more bytes
// than allowed.
var ErrPayloadTooLarge = errors.New("payload: decompressed size exceeds limit")

type readerReset interface {
	io.Reader
	Reset(r io.Reader) error
}

// snappyReader and lz4Reader adapt readers whose Reset does not fail.
type snappyReader struct{ *snappy.Reader }

func (r snappyReader) Reset(src io.Reader) error {
	r.Reader.Reset(src)
	return nil
}

type lz4Reader struct{ *lz4.Reader }

func (r lz4Reader) Reset(src io.Reader) error {
	r.Reader.Reset(src)
	return nil
}

// zlibReader carries the zlib reader, which can only be created from a valid
// stream, through the pool.
type zlibReader struct{ rc io.ReadCloser }

func (r *zlibReader) Read(p []byte) (int, error) {
	return r.rc.Read(p)
}

func (r *zlibReader) Reset(src io.Reader) error {
	if r.rc == nil {
		rc, err := zlib.NewReader(src)
		if err != nil {
			return err
		}
		r.rc = rc
		return nil
	}
	return r.rc.(zlib.Resetter).Reset(src, nil)
}

var (
	_ readerReset = (*gzip.Reader)(nil)
	_ readerReset = (*zlibReader)(nil)
	_ readerReset = snappyReader{}
	_ readerReset = (*zstd.Decoder)(nil)
	_ readerReset = lz4Reader{}
)

var (
	gzipPool   = &decompressor{pool: sync.Pool{New: func() any { return new(gzip.Reader) }}}
	zlibPool   = &decompressor{pool: sync.Pool{New: func() any { return new(zlibReader) }}}
	snappyPool = &decompressor{pool: sync.Pool{New: func() any { return snappyReader{snappy.NewReader(nil)} }}}
	zstdPool   = &decompressor{pool: sync.Pool{New: func() any {
		// Concurrency 1 decodes synchronously, without background goroutines.
		zr, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		return zr
	}}}
	lz4Pool = &decompressor{pool: sync.Pool{New: func() any {
		lz := lz4.NewReader(nil)
		_ = lz.Apply(lz4.ConcurrencyOption(1))
		return lz4Reader{lz}
	}}}
)

type decompressor struct {
	pool sync.Pool
}

func newDecompressor(c Compression) (*decompressor, error) {
	switch c {
	case CompressionGzip:
		return gzipPool, nil
	case CompressionZlib, CompressionDeflate:
		return zlibPool, nil
	case CompressionSnappyFramed:
		return snappyPool, nil
	case CompressionZstd:
		return zstdPool, nil
	case CompressionLz4:
		return lz4Pool, nil
	}
	return nil, fmt.Errorf("unsupported compression type %q", c)
}

func (d *decompressor) decompress(dst, src []byte, maxSize int64) ([]byte, error) {
	r := d.pool.Get().(readerReset)
	defer d.pool.Put(r)
	if err := r.Reset(bytes.NewReader(src)); err != nil {
		return dst, err
	}
	return readAll(dst, r, maxSize)
}

// Decompress appends the decoded form of src to dst and returns the extended
// buffer. A maxSize greater than zero limits the number of decoded bytes.
// The result must be treated as immutable while views decoded from it are in
// use; reusing it as dst for the next payload is only safe afterwards.
func Decompress(c Compression, dst, src []byte, maxSize int64) ([]byte, error) {
	switch c {
	case CompressionEmpty, CompressionNone:
		if maxSize > 0 && int64(len(src)) > maxSize {
			return dst, ErrPayloadTooLarge
		}
		return append(dst, src...), nil
	case CompressionSnappy:
		return decodeSnappyBlock(dst, src, maxSize)
	}
	d, err := newDecompressor(c)
	if err != nil {
		return dst, err
	}
	out, err := d.decompress(dst, src, maxSize)
	if err != nil && !errors.Is(err, ErrPayloadTooLarge) {
		return dst, fmt.Errorf("failed to decompress %s payload: %w", c, err)
	}
	return out, err
}

func decodeSnappyBlock(dst, src []byte, maxSize int64) ([]byte, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return dst, fmt.Errorf("failed to decompress snappy payload: %w", err)
	}
	if maxSize > 0 && int64(n) > maxSize {
		return dst, ErrPayloadTooLarge
	}
	start := len(dst)
	dst = grow(dst, n)
	if _, err = snappy.Decode(dst[start:start+n], src); err != nil {
		return dst[:start], fmt.Errorf("failed to decompress snappy payload: %w", err)
	}
	return dst, nil
}

// grow extends dst by n bytes, reusing its capacity when possible.
func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst[:len(dst)+n]
	}
	out := make([]byte, len(dst)+n)
	copy(out, dst)
	return out
}

func readAll(dst []byte, r io.Reader, maxSize int64) ([]byte, error) {
	// One extra byte tells an exact fit from an overflow. math.MaxInt64 can
	// never be exceeded, so it is left unlimited.
	if maxSize > 0 && maxSize < math.MaxInt64 {
		r = io.LimitReader(r, maxSize+1)
	}
	start := len(dst)
	buf := bytes.NewBuffer(dst)
	if _, err := buf.ReadFrom(r); err != nil {
		return dst[:start], err
	}
	out := buf.Bytes()
	if maxSize > 0 && int64(len(out)-start) > maxSize {
		return dst[:start], ErrPayloadTooLarge
	}
	return out, nil
}
