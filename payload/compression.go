// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload turns a possibly compressed OTLP request body into the
// resident, immutable buffer the logs decoders operate on.
package payload // import "go.opentelemetry.io/collector/logsview/payload"

import "fmt"

// Compression is the content encoding of a payload.
type Compression string

const (
	CompressionEmpty        Compression = ""
	CompressionNone         Compression = "none"
	CompressionGzip         Compression = "gzip"
	CompressionZlib         Compression = "zlib"
	CompressionDeflate      Compression = "deflate"
	CompressionSnappy       Compression = "snappy"
	CompressionSnappyFramed Compression = "x-snappy-framed"
	CompressionZstd         Compression = "zstd"
	CompressionLz4          Compression = "lz4"
)

// IsCompressed reports whether c requires decompression.
func (c Compression) IsCompressed() bool {
	return c != CompressionEmpty && c != CompressionNone
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Compression) UnmarshalText(in []byte) error {
	switch typ := Compression(in); typ {
	case CompressionEmpty,
		CompressionNone,
		CompressionGzip,
		CompressionZlib,
		CompressionDeflate,
		CompressionSnappy,
		CompressionSnappyFramed,
		CompressionZstd,
		CompressionLz4:
		*c = typ
		return nil
	default:
		return fmt.Errorf("unsupported compression type %q", typ)
	}
}
