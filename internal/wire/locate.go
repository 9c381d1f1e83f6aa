// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package wire // import "go.opentelemetry.io/collector/logsview/internal/wire"

import (
	"math"
	"unicode/utf8"
	"unsafe"
)

// Field is the location of one field value inside a message's byte range.
// Pos points at the first byte after the tag.
type Field struct {
	Num  uint32
	Type WireType
	Pos  int
}

// FindFirst scans buf from the start and returns the first field numbered num.
// The scan stops silently at the first malformed field.
func FindFirst(buf []byte, num uint32) (Field, bool) {
	pos := 0
	for pos < len(buf) {
		n, wt, next, err := ConsumeTag(buf, pos)
		if err != nil {
			return Field{}, false
		}
		if n == num {
			return Field{Num: n, Type: wt, Pos: next}, true
		}
		if pos, err = SkipField(buf, next, wt); err != nil {
			return Field{}, false
		}
	}
	return Field{}, false
}

// FindAll appends every field numbered num to dst in wire order, stopping
// silently at the first malformed field.
func FindAll(buf []byte, num uint32, dst []Field) []Field {
	it := NewIterator(buf, num)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		dst = append(dst, f)
	}
	return dst
}

// Iterator walks the occurrences of one repeated field without allocating.
type Iterator struct {
	buf []byte
	num uint32
	pos int
}

// NewIterator returns an Iterator over the fields numbered num in buf.
func NewIterator(buf []byte, num uint32) Iterator {
	return Iterator{buf: buf, num: num}
}

// Next returns the next matching field, or false once the message is
// exhausted or malformed. A matching field whose value cannot be skipped is
// still returned; its typed readers report it as absent.
func (it *Iterator) Next() (Field, bool) {
	for it.pos < len(it.buf) {
		n, wt, next, err := ConsumeTag(it.buf, it.pos)
		if err != nil {
			it.pos = len(it.buf)
			return Field{}, false
		}
		if it.pos, err = SkipField(it.buf, next, wt); err != nil {
			it.pos = len(it.buf)
		}
		if n == it.num {
			return Field{Num: n, Type: wt, Pos: next}, true
		}
	}
	return Field{}, false
}

// Scan calls fn for every field of buf in wire order until fn returns false.
// It returns the error that stopped the scan early, if any; the field whose
// value could not be skipped is passed to fn before the scan stops.
func Scan(buf []byte, fn func(Field) bool) error {
	pos := 0
	for pos < len(buf) {
		n, wt, next, err := ConsumeTag(buf, pos)
		if err != nil {
			return err
		}
		end, skipErr := SkipField(buf, next, wt)
		if !fn(Field{Num: n, Type: wt, Pos: next}) {
			return nil
		}
		if skipErr != nil {
			return skipErr
		}
		pos = end
	}
	return nil
}

// Varint returns the varint value of f.
func (f Field) Varint(buf []byte) (uint64, bool) {
	if f.Type != WireTypeVarint {
		return 0, false
	}
	v, _, err := ConsumeVarint(buf, f.Pos)
	return v, err == nil
}

// Fixed32 returns the fixed32 value of f.
func (f Field) Fixed32(buf []byte) (uint32, bool) {
	if f.Type != WireTypeI32 {
		return 0, false
	}
	v, _, err := ConsumeI32(buf, f.Pos)
	return v, err == nil
}

// Fixed64 returns the fixed64 value of f.
func (f Field) Fixed64(buf []byte) (uint64, bool) {
	if f.Type != WireTypeI64 {
		return 0, false
	}
	v, _, err := ConsumeI64(buf, f.Pos)
	return v, err == nil
}

// Double returns the fixed64 value of f reinterpreted as an IEEE 754 double.
func (f Field) Double(buf []byte) (float64, bool) {
	v, ok := f.Fixed64(buf)
	return math.Float64frombits(v), ok
}

// Bytes returns the length-delimited payload of f. The result aliases buf.
func (f Field) Bytes(buf []byte) ([]byte, bool) {
	if f.Type != WireTypeLen {
		return nil, false
	}
	b, _, err := ConsumeLen(buf, f.Pos)
	return b, err == nil
}

// String returns the length-delimited payload of f as a string sharing memory
// with buf. Invalid UTF-8 is reported as absent.
func (f Field) String(buf []byte) (string, bool) {
	b, ok := f.Bytes(buf)
	if !ok || !utf8.Valid(b) {
		return "", false
	}
	return UnsafeString(b), true
}

// UnsafeString returns a string sharing memory with b. b must not be modified
// while the string is reachable.
func UnsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// FindVarint returns the first field numbered num as a varint.
func FindVarint(buf []byte, num uint32) (uint64, bool) {
	f, ok := FindFirst(buf, num)
	if !ok {
		return 0, false
	}
	return f.Varint(buf)
}

// FindFixed32 returns the first field numbered num as a fixed32.
func FindFixed32(buf []byte, num uint32) (uint32, bool) {
	f, ok := FindFirst(buf, num)
	if !ok {
		return 0, false
	}
	return f.Fixed32(buf)
}

// FindFixed64 returns the first field numbered num as a fixed64.
func FindFixed64(buf []byte, num uint32) (uint64, bool) {
	f, ok := FindFirst(buf, num)
	if !ok {
		return 0, false
	}
	return f.Fixed64(buf)
}

// FindBytes returns the payload of the first field numbered num.
func FindBytes(buf []byte, num uint32) ([]byte, bool) {
	f, ok := FindFirst(buf, num)
	if !ok {
		return nil, false
	}
	return f.Bytes(buf)
}

// FindString returns the first field numbered num as a UTF-8 string.
func FindString(buf []byte, num uint32) (string, bool) {
	f, ok := FindFirst(buf, num)
	if !ok {
		return "", false
	}
	return f.String(buf)
}
