// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestConsumeVarint(t *testing.T) {
	values := []uint64{
		0, 1, 127, 128, 300, 1<<14 - 1, 1 << 14, 1<<21 - 1, 1 << 21,
		1<<28 - 1, 1 << 28, 1 << 35, 1<<56 + 3, 1 << 63, math.MaxUint64,
	}
	for _, v := range values {
		buf := protowire.AppendVarint([]byte{0xaa}, v)
		got, next, err := ConsumeVarint(buf, 1)
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), next)
	}
}

func TestConsumeVarintErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		pos  int
		err  error
	}{
		{name: "empty", buf: nil, err: ErrTruncated},
		{name: "pos_past_end", buf: []byte{0x01}, pos: 1, err: ErrTruncated},
		{name: "negative_pos", buf: []byte{0x01}, pos: -1, err: ErrTruncated},
		{name: "one_continuation", buf: []byte{0x80}, err: ErrTruncated},
		{name: "three_continuations", buf: []byte{0x80, 0x80, 0x80}, err: ErrTruncated},
		{name: "long_truncated", buf: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, err: ErrTruncated},
		{
			name: "tenth_byte_too_large",
			buf:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02},
			err:  ErrVarintOverflow,
		},
		{
			name: "eleven_bytes",
			buf:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
			err:  ErrVarintOverflow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, next, err := ConsumeVarint(tt.buf, tt.pos)
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.pos, next)
		})
	}
}

func TestConsumeVarintNonMinimal(t *testing.T) {
	v, next, err := ConsumeVarint([]byte{0x80, 0x80, 0x00}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
	assert.Equal(t, 3, next)
}

func TestConsumeTag(t *testing.T) {
	buf := protowire.AppendTag(nil, 12, protowire.BytesType)
	num, wt, next, err := ConsumeTag(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), num)
	assert.Equal(t, WireTypeLen, wt)
	assert.Equal(t, len(buf), next)

	_, _, _, err = ConsumeTag(protowire.AppendVarint(nil, 1<<40), 0)
	require.ErrorIs(t, err, ErrVarintOverflow)
}

func TestConsumeLen(t *testing.T) {
	buf := protowire.AppendBytes(nil, []byte("hello"))
	buf = append(buf, 0x01)
	b, next, err := ConsumeLen(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b)
	assert.Equal(t, 6, next)
	assert.Equal(t, 5, cap(b))

	b, next, err = ConsumeLen([]byte{0x00}, 0)
	require.NoError(t, err)
	assert.Empty(t, b)
	assert.Equal(t, 1, next)

	_, _, err = ConsumeLen([]byte{0x05, 'a', 'b'}, 0)
	require.ErrorIs(t, err, ErrTruncated)

	// A length close to MaxUint64 must not wrap around.
	huge := protowire.AppendVarint(nil, math.MaxUint64-1)
	_, _, err = ConsumeLen(append(huge, 'a'), 0)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestConsumeFixed(t *testing.T) {
	buf := protowire.AppendFixed32(nil, 0xdeadbeef)
	buf = protowire.AppendFixed64(buf, 0x0102030405060708)

	v32, next, err := ConsumeI32(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v32)
	assert.Equal(t, 4, next)

	v64, next, err := ConsumeI64(buf, next)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), v64)
	assert.Equal(t, 12, next)

	_, _, err = ConsumeI32(buf[:3], 0)
	require.ErrorIs(t, err, ErrTruncated)
	_, _, err = ConsumeI64(buf, 5)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestSkipField(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		wt   WireType
		next int
		err  error
	}{
		{name: "varint", buf: protowire.AppendVarint(nil, 1<<30), wt: WireTypeVarint, next: 5},
		{name: "i64", buf: make([]byte, 8), wt: WireTypeI64, next: 8},
		{name: "i64_short", buf: make([]byte, 7), wt: WireTypeI64, err: ErrTruncated},
		{name: "len", buf: protowire.AppendString(nil, "abc"), wt: WireTypeLen, next: 4},
		{name: "len_short", buf: []byte{0x04, 'a'}, wt: WireTypeLen, err: ErrTruncated},
		{name: "i32", buf: make([]byte, 4), wt: WireTypeI32, next: 4},
		{name: "i32_short", buf: make([]byte, 3), wt: WireTypeI32, err: ErrTruncated},
		{name: "start_group", buf: make([]byte, 8), wt: WireTypeStartGroup, err: ErrUnsupportedWireType},
		{name: "end_group", buf: make([]byte, 8), wt: WireTypeEndGroup, err: ErrUnsupportedWireType},
		{name: "reserved", buf: make([]byte, 8), wt: 6, err: ErrUnsupportedWireType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := SkipField(tt.buf, 0, tt.wt)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestWireTypeString(t *testing.T) {
	assert.Equal(t, "varint", WireTypeVarint.String())
	assert.Equal(t, "len", WireTypeLen.String())
	assert.Equal(t, "sgroup", WireTypeStartGroup.String())
	assert.Equal(t, "unknown", WireType(7).String())
}

func BenchmarkConsumeVarint(b *testing.B) {
	for _, tt := range []struct {
		name string
		v    uint64
	}{
		{name: "1byte", v: 100},
		{name: "3bytes", v: 1 << 20},
		{name: "8bytes", v: 1 << 50},
	} {
		buf := protowire.AppendVarint(nil, tt.v)
		b.Run(tt.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, _, err := ConsumeVarint(buf, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
