// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package eagerlogs // import "go.opentelemetry.io/collector/logsview/eagerlogs"

import (
	"iter"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var (
	_ logsview.ScopeLogsView = (*ScopeLogs)(nil)
	_ logsview.ScopeView     = (*InstrumentationScope)(nil)
)

// ScopeLogs is a collection of log records from one instrumentation scope.
type ScopeLogs struct {
	scope      InstrumentationScope
	logRecords slots[LogRecord]
	schemaURL  string
}

func (sl *ScopeLogs) parse(buf []byte) bool {
	sl.scope.reset()
	if b, ok := wire.FindBytes(buf, wire.ScopeLogsScope); ok {
		sl.scope.parse(b)
	}

	sl.logRecords.reset()
	it := wire.NewIterator(buf, wire.ScopeLogsLogRecords)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		b, ok := f.Bytes(buf)
		if !ok {
			continue
		}
		if sl.logRecords.next().parse(b) {
			sl.logRecords.commit()
		}
	}

	sl.schemaURL = findString(buf, wire.ScopeLogsSchemaURL)
	return true
}

// Scope returns the instrumentation scope. A missing scope is empty.
func (sl *ScopeLogs) Scope() logsview.ScopeView {
	return &sl.scope
}

// ScopeNode returns the instrumentation scope node of the group.
func (sl *ScopeLogs) ScopeNode() *InstrumentationScope {
	return &sl.scope
}

// LogRecordsLen returns the number of decoded log records.
func (sl *ScopeLogs) LogRecordsLen() int {
	return sl.logRecords.len()
}

// LogRecordAt returns the log record at index i.
func (sl *ScopeLogs) LogRecordAt(i int) *LogRecord {
	return sl.logRecords.at(i)
}

// LogRecords iterates the log records of the scope group.
func (sl *ScopeLogs) LogRecords() iter.Seq[logsview.LogRecordView] {
	return func(yield func(logsview.LogRecordView) bool) {
		for i := 0; i < sl.logRecords.len(); i++ {
			if !yield(sl.logRecords.at(i)) {
				return
			}
		}
	}
}

// SchemaURL returns the schema URL of the scope group.
func (sl *ScopeLogs) SchemaURL() string {
	return sl.schemaURL
}

// InstrumentationScope identifies the library that produced the records.
type InstrumentationScope struct {
	name       string
	version    string
	attributes slots[KeyValue]
	dropped    uint32
}

func (is *InstrumentationScope) reset() {
	is.name = ""
	is.version = ""
	is.attributes.reset()
	is.dropped = 0
}

func (is *InstrumentationScope) parse(buf []byte) bool {
	is.name = findString(buf, wire.ScopeName)
	is.version = findString(buf, wire.ScopeVersion)
	parseAttributes(buf, wire.ScopeAttributes, &is.attributes)
	is.dropped = findUint32(buf, wire.ScopeDroppedAttributesCount)
	return true
}

// Name returns the instrumentation scope name.
func (is *InstrumentationScope) Name() string {
	return is.name
}

// Version returns the instrumentation scope version.
func (is *InstrumentationScope) Version() string {
	return is.version
}

// AttributesLen returns the number of decoded attributes.
func (is *InstrumentationScope) AttributesLen() int {
	return is.attributes.len()
}

// AttributeAt returns the attribute at index i.
func (is *InstrumentationScope) AttributeAt(i int) *KeyValue {
	return is.attributes.at(i)
}

// Attributes iterates the scope attributes in wire order.
func (is *InstrumentationScope) Attributes() iter.Seq[logsview.AttributeView] {
	return attributesSeq(&is.attributes)
}

// DroppedAttributesCount returns the number of scope attributes discarded at the source.
func (is *InstrumentationScope) DroppedAttributesCount() uint32 {
	return is.dropped
}
