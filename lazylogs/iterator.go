// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package lazylogs // import "go.opentelemetry.io/collector/logsview/lazylogs"

import (
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

// Iterator walks the elements of a repeated message field, producing one view
// per element. It is not safe for concurrent use and holds no state besides
// its scan position.
type Iterator[T any] struct {
	buf  []byte
	view func([]byte) (T, bool)

	it wire.Iterator

	// cached replaces it when the element positions are already known.
	cached bool
	fields []wire.Field

	// wrapped elements live at field innerNum of each matched wrapper
	// message, as in ArrayValue and KeyValueList.
	wrapped  bool
	innerNum uint32
	inner    wire.Iterator
	innerBuf []byte
}

func newIterator[T any](buf []byte, num uint32, view func([]byte) (T, bool)) Iterator[T] {
	return Iterator[T]{buf: buf, view: view, it: wire.NewIterator(buf, num)}
}

func newCachedIterator[T any](buf []byte, fields []wire.Field, view func([]byte) (T, bool)) Iterator[T] {
	return Iterator[T]{buf: buf, view: view, cached: true, fields: fields}
}

func newWrappedIterator[T any](buf []byte, num, innerNum uint32, view func([]byte) (T, bool)) Iterator[T] {
	it := newIterator(buf, num, view)
	it.wrapped, it.innerNum = true, innerNum
	return it
}

// Next returns the next element, or false when the field is exhausted.
// Elements that are not length-delimited, are truncated or are rejected by
// the view are skipped.
func (it *Iterator[T]) Next() (T, bool) {
	for {
		b, ok := it.nextMessage()
		if !ok {
			var zero T
			return zero, false
		}
		if v, ok := it.view(b); ok {
			return v, true
		}
	}
}

func (it *Iterator[T]) nextMessage() ([]byte, bool) {
	if !it.wrapped {
		return it.nextRaw()
	}
	for {
		f, ok := it.inner.Next()
		if !ok {
			w, ok := it.nextRaw()
			if !ok {
				return nil, false
			}
			it.innerBuf, it.inner = w, wire.NewIterator(w, it.innerNum)
			continue
		}
		if b, ok := f.Bytes(it.innerBuf); ok {
			return b, true
		}
	}
}

func (it *Iterator[T]) nextRaw() ([]byte, bool) {
	for {
		var f wire.Field
		if it.cached {
			if len(it.fields) == 0 {
				return nil, false
			}
			f, it.fields = it.fields[0], it.fields[1:]
		} else {
			var ok bool
			if f, ok = it.it.Next(); !ok {
				return nil, false
			}
		}
		if b, ok := f.Bytes(it.buf); ok {
			return b, true
		}
	}
}
