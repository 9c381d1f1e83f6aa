// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire contains the protobuf wire primitives shared by the eager and
// lazy OTLP logs decoders.
//
// All functions operate on an immutable byte buffer and an explicit position;
// none of them allocate or retain the buffer.
package wire // import "go.opentelemetry.io/collector/logsview/internal/wire"

import (
	"encoding/binary"
	"errors"
)

// WireType is the 3-bit encoding discriminator stored in every field tag.
type WireType uint8

const (
	WireTypeVarint     WireType = 0
	WireTypeI64        WireType = 1
	WireTypeLen        WireType = 2
	WireTypeStartGroup WireType = 3
	WireTypeEndGroup   WireType = 4
	WireTypeI32        WireType = 5
)

func (wt WireType) String() string {
	switch wt {
	case WireTypeVarint:
		return "varint"
	case WireTypeI64:
		return "i64"
	case WireTypeLen:
		return "len"
	case WireTypeStartGroup:
		return "sgroup"
	case WireTypeEndGroup:
		return "egroup"
	case WireTypeI32:
		return "i32"
	}
	return "unknown"
}

var (
	// ErrTruncated is returned when a field extends past the end of the buffer.
	ErrTruncated = errors.New("proto: unexpected end of buffer")
	// ErrVarintOverflow is returned when a varint does not fit in 64 bits.
	ErrVarintOverflow = errors.New("proto: integer overflow")
	// ErrUnsupportedWireType is returned for group markers and reserved wire types.
	ErrUnsupportedWireType = errors.New("proto: unsupported wire type")
)

// ConsumeVarint decodes a base-128 varint starting at pos and returns the
// value and the position just past it.
func ConsumeVarint(buf []byte, pos int) (uint64, int, error) {
	l := len(buf)
	if pos < 0 || pos >= l {
		return 0, pos, ErrTruncated
	}

	// Small values dominate OTLP payloads (tags, lengths, enums), so the first
	// four bytes are unrolled.
	b := buf[pos]
	if b < 0x80 {
		return uint64(b), pos + 1, nil
	}
	v := uint64(b & 0x7f)

	if pos+1 >= l {
		return 0, pos, ErrTruncated
	}
	b = buf[pos+1]
	v |= uint64(b&0x7f) << 7
	if b < 0x80 {
		return v, pos + 2, nil
	}

	if pos+2 >= l {
		return 0, pos, ErrTruncated
	}
	b = buf[pos+2]
	v |= uint64(b&0x7f) << 14
	if b < 0x80 {
		return v, pos + 3, nil
	}

	if pos+3 >= l {
		return 0, pos, ErrTruncated
	}
	b = buf[pos+3]
	v |= uint64(b&0x7f) << 21
	if b < 0x80 {
		return v, pos + 4, nil
	}

	i := pos + 4
	for shift := uint(28); ; shift += 7 {
		if i >= l {
			return 0, pos, ErrTruncated
		}
		b = buf[i]
		i++
		if shift == 63 {
			// The tenth byte may only contribute the top bit.
			if b > 1 {
				return 0, pos, ErrVarintOverflow
			}
			return v | uint64(b)<<63, i, nil
		}
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, i, nil
		}
	}
}

// ConsumeTag decodes a field tag and splits it into field number and wire type.
func ConsumeTag(buf []byte, pos int) (uint32, WireType, int, error) {
	v, next, err := ConsumeVarint(buf, pos)
	if err != nil {
		return 0, 0, pos, err
	}
	num := v >> 3
	if num > 1<<29-1 {
		return 0, 0, pos, ErrVarintOverflow
	}
	return uint32(num), WireType(v & 0x7), next, nil
}

// ConsumeLen decodes a length prefix at pos and returns the sub-slice it
// delimits together with the position just past it. The returned slice
// aliases buf.
func ConsumeLen(buf []byte, pos int) ([]byte, int, error) {
	length, start, err := ConsumeVarint(buf, pos)
	if err != nil {
		return nil, pos, err
	}
	if length > uint64(len(buf)-start) {
		return nil, pos, ErrTruncated
	}
	end := start + int(length)
	return buf[start:end:end], end, nil
}

// ConsumeI32 decodes a little-endian fixed 32-bit value.
func ConsumeI32(buf []byte, pos int) (uint32, int, error) {
	if pos < 0 || len(buf)-pos < 4 {
		return 0, pos, ErrTruncated
	}
	return binary.LittleEndian.Uint32(buf[pos:]), pos + 4, nil
}

// ConsumeI64 decodes a little-endian fixed 64-bit value.
func ConsumeI64(buf []byte, pos int) (uint64, int, error) {
	if pos < 0 || len(buf)-pos < 8 {
		return 0, pos, ErrTruncated
	}
	return binary.LittleEndian.Uint64(buf[pos:]), pos + 8, nil
}

// SkipField returns the position just past the value of a field of the given
// wire type starting at pos.
func SkipField(buf []byte, pos int, wt WireType) (int, error) {
	switch wt {
	case WireTypeVarint:
		_, next, err := ConsumeVarint(buf, pos)
		return next, err
	case WireTypeI64:
		if len(buf)-pos < 8 {
			return pos, ErrTruncated
		}
		return pos + 8, nil
	case WireTypeLen:
		_, next, err := ConsumeLen(buf, pos)
		return next, err
	case WireTypeI32:
		if len(buf)-pos < 4 {
			return pos, ErrTruncated
		}
		return pos + 4, nil
	}
	return pos, ErrUnsupportedWireType
}
