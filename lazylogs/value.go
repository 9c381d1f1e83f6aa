// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package lazylogs // import "go.opentelemetry.io/collector/logsview/lazylogs"

import (
	"iter"
	"math"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var (
	_ logsview.AttributeView = KeyValue{}
	_ logsview.AnyValueView  = AnyValue{}
)

// KeyValue is a view over an encoded KeyValue message with a non-empty key.
type KeyValue struct {
	buf []byte
	key string
}

func newKeyValue(buf []byte) (KeyValue, bool) {
	key, _ := wire.FindString(buf, wire.KeyValueKey)
	if key == "" {
		return KeyValue{}, false
	}
	return KeyValue{buf: buf, key: key}, true
}

// Key returns the attribute key, never empty.
func (kv KeyValue) Key() string {
	return kv.key
}

// ValueView returns the value. A missing value is an empty value.
func (kv KeyValue) ValueView() AnyValue {
	b, _ := wire.FindBytes(kv.buf, wire.KeyValueValue)
	return AnyValue{buf: b}
}

// Value returns the attribute value. A missing value is empty.
func (kv KeyValue) Value() logsview.AnyValueView {
	return kv.ValueView()
}

// AnyValue is a view over an encoded AnyValue message.
//
// The type is the first branch, in field order, that is present with the
// expected wire type and decodes successfully. Every accessor resolves it
// again.
type AnyValue struct {
	buf []byte
}

func newAnyValue(buf []byte) (AnyValue, bool) {
	return AnyValue{buf: buf}, true
}

func (v AnyValue) resolve() (logsview.ValueType, wire.Field) {
	if f, ok := wire.FindFirst(v.buf, wire.AnyValueString); ok {
		if _, ok := f.String(v.buf); ok {
			return logsview.ValueTypeStr, f
		}
	}
	if f, ok := wire.FindFirst(v.buf, wire.AnyValueBool); ok {
		if _, ok := f.Varint(v.buf); ok {
			return logsview.ValueTypeBool, f
		}
	}
	if f, ok := wire.FindFirst(v.buf, wire.AnyValueInt); ok {
		if _, ok := f.Varint(v.buf); ok {
			return logsview.ValueTypeInt, f
		}
	}
	if f, ok := wire.FindFirst(v.buf, wire.AnyValueDouble); ok {
		if _, ok := f.Fixed64(v.buf); ok {
			return logsview.ValueTypeDouble, f
		}
	}
	if f, ok := wire.FindFirst(v.buf, wire.AnyValueArray); ok {
		if _, ok := f.Bytes(v.buf); ok {
			return logsview.ValueTypeArray, f
		}
	}
	if f, ok := wire.FindFirst(v.buf, wire.AnyValueKeyValues); ok {
		if _, ok := f.Bytes(v.buf); ok {
			return logsview.ValueTypeKeyValueList, f
		}
	}
	if f, ok := wire.FindFirst(v.buf, wire.AnyValueBytes); ok {
		if _, ok := f.Bytes(v.buf); ok {
			return logsview.ValueTypeBytes, f
		}
	}
	return logsview.ValueTypeEmpty, wire.Field{}
}

// Type returns the kind of value held.
func (v AnyValue) Type() logsview.ValueType {
	t, _ := v.resolve()
	return t
}

// Str returns the string value. ok is false for other types.
func (v AnyValue) Str() (string, bool) {
	t, f := v.resolve()
	if t != logsview.ValueTypeStr {
		return "", false
	}
	return f.String(v.buf)
}

// Bool returns the bool value. ok is false for other types.
func (v AnyValue) Bool() (bool, bool) {
	t, f := v.resolve()
	if t != logsview.ValueTypeBool {
		return false, false
	}
	n, ok := f.Varint(v.buf)
	return n != 0, ok
}

// Int returns the int value. ok is false for other types.
func (v AnyValue) Int() (int64, bool) {
	t, f := v.resolve()
	if t != logsview.ValueTypeInt {
		return 0, false
	}
	n, ok := f.Varint(v.buf)
	return int64(n), ok //nolint:gosec // G115
}

// Double returns the double value. ok is false for other types.
func (v AnyValue) Double() (float64, bool) {
	t, f := v.resolve()
	if t != logsview.ValueTypeDouble {
		return 0, false
	}
	n, ok := f.Fixed64(v.buf)
	return math.Float64frombits(n), ok
}

// Bytes returns the bytes value, aliasing the payload. ok is false for other types.
func (v AnyValue) Bytes() ([]byte, bool) {
	t, f := v.resolve()
	if t != logsview.ValueTypeBytes {
		return nil, false
	}
	return f.Bytes(v.buf)
}

// ArrayIter returns an iterator over the elements of every ArrayValue in the
// message. The second result is false when the value is not an array.
func (v AnyValue) ArrayIter() (Iterator[AnyValue], bool) {
	if v.Type() != logsview.ValueTypeArray {
		return Iterator[AnyValue]{}, false
	}
	return newWrappedIterator(v.buf, wire.AnyValueArray, wire.ArrayValueValues, newAnyValue), true
}

// Array iterates the array elements. ok is false for other types.
func (v AnyValue) Array() (iter.Seq[logsview.AnyValueView], bool) {
	it, ok := v.ArrayIter()
	if !ok {
		return nil, false
	}
	return func(yield func(logsview.AnyValueView) bool) {
		cur := it
		for elem, ok := cur.Next(); ok; elem, ok = cur.Next() {
			if !yield(elem) {
				return
			}
		}
	}, true
}

// KeyValueListIter returns an iterator over the pairs of every KeyValueList
// in the message. The second result is false when the value is not a
// key/value list.
func (v AnyValue) KeyValueListIter() (Iterator[KeyValue], bool) {
	if v.Type() != logsview.ValueTypeKeyValueList {
		return Iterator[KeyValue]{}, false
	}
	return newWrappedIterator(v.buf, wire.AnyValueKeyValues, wire.KeyValueListValues, newKeyValue), true
}

// KeyValueList iterates the map entries. ok is false for other types.
func (v AnyValue) KeyValueList() (iter.Seq[logsview.AttributeView], bool) {
	it, ok := v.KeyValueListIter()
	if !ok {
		return nil, false
	}
	return attributesSeq(it), true
}
