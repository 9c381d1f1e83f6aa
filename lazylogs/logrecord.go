// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package lazylogs // import "go.opentelemetry.io/collector/logsview/lazylogs"

import (
	"iter"
	"sync"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var _ logsview.LogRecordView = (*LogRecord)(nil)

// LogRecord is a view over an encoded LogRecord message.
//
// The first accessor call scans the message once and remembers the position
// of the first occurrence of every known field and of every attribute; later
// calls are served from that cache. The scan runs at most once per LogRecord
// even when accessed from multiple goroutines. A LogRecord must not be copied.
type LogRecord struct {
	buf      []byte
	useCache bool

	once     sync.Once
	fields   [wire.MaxLogRecordField + 1]wire.Field
	attrs    []wire.Field
	attrsBuf [8]wire.Field
}

func newLogRecord(buf []byte) (*LogRecord, bool) {
	return NewLogRecord(buf), true
}

// NewLogRecord returns a view over an encoded LogRecord message.
func NewLogRecord(buf []byte) *LogRecord {
	return &LogRecord{
		buf:      buf,
		useCache: logsview.LazyRecordFieldCacheGate.IsEnabled(),
	}
}

// Reset points lr at another encoded LogRecord message and drops its field
// cache, so one LogRecord can be reused across records. Attribute iterators
// obtained from lr before the reset must not be used after it.
func (lr *LogRecord) Reset(buf []byte) {
	*lr = LogRecord{
		buf:      buf,
		useCache: logsview.LazyRecordFieldCacheGate.IsEnabled(),
	}
}

func (lr *LogRecord) scan() {
	lr.attrs = lr.attrsBuf[:0]
	_ = wire.Scan(lr.buf, func(f wire.Field) bool {
		switch {
		case f.Num == wire.LogRecordAttributes:
			lr.attrs = append(lr.attrs, f)
		case f.Num != 0 && f.Num <= wire.MaxLogRecordField && lr.fields[f.Num].Num == 0:
			lr.fields[f.Num] = f
		}
		return true
	})
}

func (lr *LogRecord) field(num uint32) (wire.Field, bool) {
	if !lr.useCache {
		return wire.FindFirst(lr.buf, num)
	}
	lr.once.Do(lr.scan)
	f := lr.fields[num]
	return f, f.Num != 0
}

// TimeUnixNano returns the time the event occurred, if set.
func (lr *LogRecord) TimeUnixNano() (uint64, bool) {
	f, ok := lr.field(wire.LogRecordTimeUnixNano)
	if !ok {
		return 0, false
	}
	return f.Fixed64(lr.buf)
}

// ObservedTimeUnixNano returns the time the event was observed, or 0.
func (lr *LogRecord) ObservedTimeUnixNano() uint64 {
	f, ok := lr.field(wire.LogRecordObservedTimeUnixNano)
	if !ok {
		return 0
	}
	v, _ := f.Fixed64(lr.buf)
	return v
}

// Timestamp returns the record time, falling back to a non-zero observed time.
func (lr *LogRecord) Timestamp() (uint64, bool) {
	if ts, ok := lr.TimeUnixNano(); ok {
		return ts, true
	}
	ts := lr.ObservedTimeUnixNano()
	return ts, ts != 0
}

// SeverityNumber returns the numerical severity, or 0 when unspecified.
func (lr *LogRecord) SeverityNumber() int32 {
	f, ok := lr.field(wire.LogRecordSeverityNumber)
	if !ok {
		return 0
	}
	v, _ := f.Varint(lr.buf)
	return int32(v) //nolint:gosec // G115
}

// SeverityText returns the severity as known at the source.
func (lr *LogRecord) SeverityText() string {
	return lr.string(wire.LogRecordSeverityText)
}

// RawBody returns the encoded body AnyValue message.
func (lr *LogRecord) RawBody() ([]byte, bool) {
	return lr.bytes(wire.LogRecordBody)
}

// BodyView returns the body. A missing body is an empty value.
func (lr *LogRecord) BodyView() AnyValue {
	b, _ := lr.RawBody()
	return AnyValue{buf: b}
}

// Body returns the record body. A missing body is an empty value.
func (lr *LogRecord) Body() logsview.AnyValueView {
	return lr.BodyView()
}

// AttributesIter returns an iterator over the record attributes.
func (lr *LogRecord) AttributesIter() Iterator[KeyValue] {
	if !lr.useCache {
		return newIterator(lr.buf, wire.LogRecordAttributes, newKeyValue)
	}
	lr.once.Do(lr.scan)
	return newCachedIterator(lr.buf, lr.attrs, newKeyValue)
}

// Attributes iterates the record attributes in wire order.
func (lr *LogRecord) Attributes() iter.Seq[logsview.AttributeView] {
	return attributesSeq(lr.AttributesIter())
}

// DroppedAttributesCount returns the number of attributes discarded at the source.
func (lr *LogRecord) DroppedAttributesCount() uint32 {
	f, ok := lr.field(wire.LogRecordDroppedAttributesCount)
	if !ok {
		return 0
	}
	v, _ := f.Varint(lr.buf)
	return uint32(v) //nolint:gosec // G115
}

// Flags returns the W3C trace flags field, if set.
func (lr *LogRecord) Flags() (uint32, bool) {
	f, ok := lr.field(wire.LogRecordFlags)
	if !ok {
		return 0, false
	}
	return f.Fixed32(lr.buf)
}

// TraceID returns the trace id. An empty id is reported as absent.
func (lr *LogRecord) TraceID() ([]byte, bool) {
	return lr.id(wire.LogRecordTraceID)
}

// SpanID returns the span id. An empty id is reported as absent.
func (lr *LogRecord) SpanID() ([]byte, bool) {
	return lr.id(wire.LogRecordSpanID)
}

// EventName returns the name identifying the event, if any.
func (lr *LogRecord) EventName() string {
	return lr.string(wire.LogRecordEventName)
}

// IsTraceIDValid reports whether the trace id is 16 bytes and not all zeros.
func (lr *LogRecord) IsTraceIDValid() bool {
	return logsview.IsValidTraceID(lr)
}

// IsSpanIDValid reports whether the span id is 8 bytes and not all zeros.
func (lr *LogRecord) IsSpanIDValid() bool {
	return logsview.IsValidSpanID(lr)
}

// TraceFlags returns the low byte of the record flags.
func (lr *LogRecord) TraceFlags() uint8 {
	return logsview.TraceFlags(lr)
}

func (lr *LogRecord) bytes(num uint32) ([]byte, bool) {
	f, ok := lr.field(num)
	if !ok {
		return nil, false
	}
	return f.Bytes(lr.buf)
}

// id returns the id stored at field num. An empty id is the proto3 default
// and is reported as absent.
func (lr *LogRecord) id(num uint32) ([]byte, bool) {
	b, ok := lr.bytes(num)
	if !ok || len(b) == 0 {
		return nil, false
	}
	return b, true
}

func (lr *LogRecord) string(num uint32) string {
	f, ok := lr.field(num)
	if !ok {
		return ""
	}
	s, _ := f.String(lr.buf)
	return s
}
