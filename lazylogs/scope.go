// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package lazylogs // import "go.opentelemetry.io/collector/logsview/lazylogs"

import (
	"iter"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var (
	_ logsview.ScopeLogsView = ScopeLogs{}
	_ logsview.ScopeView     = InstrumentationScope{}
)

// ScopeLogs is a view over an encoded ScopeLogs message.
type ScopeLogs struct {
	buf []byte
}

func newScopeLogs(buf []byte) (ScopeLogs, bool) {
	return ScopeLogs{buf: buf}, true
}

// RawScope returns the encoded InstrumentationScope message.
func (sl ScopeLogs) RawScope() ([]byte, bool) {
	return wire.FindBytes(sl.buf, wire.ScopeLogsScope)
}

// ScopeView returns the instrumentation scope. A missing scope is an empty
// view.
func (sl ScopeLogs) ScopeView() InstrumentationScope {
	b, _ := sl.RawScope()
	return InstrumentationScope{buf: b}
}

// Scope returns the instrumentation scope. A missing scope is empty.
func (sl ScopeLogs) Scope() logsview.ScopeView {
	return sl.ScopeView()
}

// LogRecordsIter returns an iterator over the log records. Each record view
// is allocated fresh and owns its field cache.
func (sl ScopeLogs) LogRecordsIter() Iterator[*LogRecord] {
	return newIterator(sl.buf, wire.ScopeLogsLogRecords, newLogRecord)
}

// LogRecords iterates the log records of the scope group.
func (sl ScopeLogs) LogRecords() iter.Seq[logsview.LogRecordView] {
	return func(yield func(logsview.LogRecordView) bool) {
		it := sl.LogRecordsIter()
		for lr, ok := it.Next(); ok; lr, ok = it.Next() {
			if !yield(lr) {
				return
			}
		}
	}
}

// LogRecordsInto iterates the log records of the scope group, resetting lr
// to each one in turn instead of allocating a view per record. The yielded
// pointer is always lr and is only valid until the next iteration.
func (sl ScopeLogs) LogRecordsInto(lr *LogRecord) iter.Seq[*LogRecord] {
	return func(yield func(*LogRecord) bool) {
		it := wire.NewIterator(sl.buf, wire.ScopeLogsLogRecords)
		for f, ok := it.Next(); ok; f, ok = it.Next() {
			b, ok := f.Bytes(sl.buf)
			if !ok {
				continue
			}
			lr.Reset(b)
			if !yield(lr) {
				return
			}
		}
	}
}

// SchemaURL returns the schema URL of the scope group.
func (sl ScopeLogs) SchemaURL() string {
	s, _ := wire.FindString(sl.buf, wire.ScopeLogsSchemaURL)
	return s
}

// InstrumentationScope is a view over an encoded InstrumentationScope message.
type InstrumentationScope struct {
	buf []byte
}

// Name returns the instrumentation scope name.
func (is InstrumentationScope) Name() string {
	s, _ := wire.FindString(is.buf, wire.ScopeName)
	return s
}

// Version returns the instrumentation scope version.
func (is InstrumentationScope) Version() string {
	s, _ := wire.FindString(is.buf, wire.ScopeVersion)
	return s
}

// AttributesIter returns an iterator over the scope attributes.
func (is InstrumentationScope) AttributesIter() Iterator[KeyValue] {
	return newIterator(is.buf, wire.ScopeAttributes, newKeyValue)
}

// Attributes iterates the scope attributes in wire order.
func (is InstrumentationScope) Attributes() iter.Seq[logsview.AttributeView] {
	return attributesSeq(is.AttributesIter())
}

// DroppedAttributesCount returns the number of scope attributes discarded at the source.
func (is InstrumentationScope) DroppedAttributesCount() uint32 {
	v, _ := wire.FindVarint(is.buf, wire.ScopeDroppedAttributesCount)
	return uint32(v) //nolint:gosec // G115
}
