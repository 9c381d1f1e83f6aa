// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package eagerlogs // import "go.opentelemetry.io/collector/logsview/eagerlogs"

import (
	"iter"
	"math"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var (
	_ logsview.AttributeView = (*KeyValue)(nil)
	_ logsview.AnyValueView  = (*AnyValue)(nil)
)

// KeyValue is a decoded attribute. Attributes with an empty key are dropped
// while parsing.
type KeyValue struct {
	key   string
	value AnyValue
}

func (kv *KeyValue) parse(buf []byte) bool {
	kv.key = findString(buf, wire.KeyValueKey)
	if kv.key == "" {
		return false
	}
	kv.value.reset()
	if b, ok := wire.FindBytes(buf, wire.KeyValueValue); ok {
		kv.value.parse(b)
	}
	return true
}

// Key returns the attribute key, never empty.
func (kv *KeyValue) Key() string {
	return kv.key
}

// Value returns the attribute value. A missing value is empty.
func (kv *KeyValue) Value() logsview.AnyValueView {
	return &kv.value
}

// ValueNode returns the attribute value node.
func (kv *KeyValue) ValueNode() *AnyValue {
	return &kv.value
}

// AnyValue is a decoded dynamically typed value.
type AnyValue struct {
	kind   logsview.ValueType
	str    string
	bytes  []byte
	num    uint64
	array  slots[AnyValue]
	kvlist slots[KeyValue]
}

func (v *AnyValue) reset() {
	v.kind = logsview.ValueTypeEmpty
	v.str = ""
	v.bytes = nil
	v.num = 0
	v.array.reset()
	v.kvlist.reset()
}

// parse decodes the first valid branch in field order. A message without any
// valid branch decodes to an empty value.
func (v *AnyValue) parse(buf []byte) bool {
	v.reset()
	if s, ok := wire.FindString(buf, wire.AnyValueString); ok {
		v.kind, v.str = logsview.ValueTypeStr, s
		return true
	}
	if n, ok := wire.FindVarint(buf, wire.AnyValueBool); ok {
		v.kind, v.num = logsview.ValueTypeBool, min(n, 1)
		return true
	}
	if n, ok := wire.FindVarint(buf, wire.AnyValueInt); ok {
		v.kind, v.num = logsview.ValueTypeInt, n
		return true
	}
	if n, ok := wire.FindFixed64(buf, wire.AnyValueDouble); ok {
		v.kind, v.num = logsview.ValueTypeDouble, n
		return true
	}
	if _, ok := wire.FindBytes(buf, wire.AnyValueArray); ok {
		v.kind = logsview.ValueTypeArray
		v.parseArray(buf)
		return true
	}
	if _, ok := wire.FindBytes(buf, wire.AnyValueKeyValues); ok {
		v.kind = logsview.ValueTypeKeyValueList
		v.parseKeyValueList(buf)
		return true
	}
	if b, ok := wire.FindBytes(buf, wire.AnyValueBytes); ok {
		v.kind, v.bytes = logsview.ValueTypeBytes, b
		return true
	}
	return true
}

// parseArray decodes the elements of every ArrayValue occurrence in buf.
func (v *AnyValue) parseArray(buf []byte) {
	outer := wire.NewIterator(buf, wire.AnyValueArray)
	for f, ok := outer.Next(); ok; f, ok = outer.Next() {
		arr, ok := f.Bytes(buf)
		if !ok {
			continue
		}
		it := wire.NewIterator(arr, wire.ArrayValueValues)
		for ef, ok := it.Next(); ok; ef, ok = it.Next() {
			b, ok := ef.Bytes(arr)
			if !ok {
				continue
			}
			if v.array.next().parse(b) {
				v.array.commit()
			}
		}
	}
}

// parseKeyValueList decodes the pairs of every KeyValueList occurrence in buf.
func (v *AnyValue) parseKeyValueList(buf []byte) {
	outer := wire.NewIterator(buf, wire.AnyValueKeyValues)
	for f, ok := outer.Next(); ok; f, ok = outer.Next() {
		kvl, ok := f.Bytes(buf)
		if !ok {
			continue
		}
		parseAppendAttributes(kvl, wire.KeyValueListValues, &v.kvlist)
	}
}

// Type returns the kind of value held.
func (v *AnyValue) Type() logsview.ValueType {
	return v.kind
}

// Str returns the string value. ok is false for other types.
func (v *AnyValue) Str() (string, bool) {
	return v.str, v.kind == logsview.ValueTypeStr
}

// Bool returns the bool value. ok is false for other types.
func (v *AnyValue) Bool() (bool, bool) {
	if v.kind != logsview.ValueTypeBool {
		return false, false
	}
	return v.num != 0, true
}

// Int returns the int value. ok is false for other types.
func (v *AnyValue) Int() (int64, bool) {
	if v.kind != logsview.ValueTypeInt {
		return 0, false
	}
	return int64(v.num), true //nolint:gosec // int64 values are encoded as two's complement varints
}

// Double returns the double value. ok is false for other types.
func (v *AnyValue) Double() (float64, bool) {
	if v.kind != logsview.ValueTypeDouble {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

// Bytes returns the bytes value, aliasing the payload. ok is false for other types.
func (v *AnyValue) Bytes() ([]byte, bool) {
	return v.bytes, v.kind == logsview.ValueTypeBytes
}

// ArrayLen returns the number of array elements, 0 for other types.
func (v *AnyValue) ArrayLen() int {
	return v.array.len()
}

// ArrayAt returns the array element at index i.
func (v *AnyValue) ArrayAt(i int) *AnyValue {
	return v.array.at(i)
}

// Array iterates the array elements. ok is false for other types.
func (v *AnyValue) Array() (iter.Seq[logsview.AnyValueView], bool) {
	if v.kind != logsview.ValueTypeArray {
		return nil, false
	}
	return func(yield func(logsview.AnyValueView) bool) {
		for i := 0; i < v.array.len(); i++ {
			if !yield(v.array.at(i)) {
				return
			}
		}
	}, true
}

// KeyValueListLen returns the number of pairs in a key/value list, 0 for other
// types.
func (v *AnyValue) KeyValueListLen() int {
	return v.kvlist.len()
}

// KeyValueListAt returns the pair at index i.
func (v *AnyValue) KeyValueListAt(i int) *KeyValue {
	return v.kvlist.at(i)
}

// KeyValueList iterates the map entries. ok is false for other types.
func (v *AnyValue) KeyValueList() (iter.Seq[logsview.AttributeView], bool) {
	if v.kind != logsview.ValueTypeKeyValueList {
		return nil, false
	}
	return attributesSeq(&v.kvlist), true
}
