// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package eagerlogs // import "go.opentelemetry.io/collector/logsview/eagerlogs"

import (
	"iter"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var _ logsview.LogRecordView = (*LogRecord)(nil)

// LogRecord is a single decoded log event.
type LogRecord struct {
	timeUnixNano         uint64
	hasTime              bool
	observedTimeUnixNano uint64
	severityNumber       int32
	severityText         string
	body                 AnyValue
	attributes           slots[KeyValue]
	dropped              uint32
	flags                uint32
	hasFlags             bool
	traceID              []byte
	hasTraceID           bool
	spanID               []byte
	hasSpanID            bool
	eventName            string
}

func (lr *LogRecord) parse(buf []byte) bool {
	lr.timeUnixNano, lr.hasTime = wire.FindFixed64(buf, wire.LogRecordTimeUnixNano)
	lr.observedTimeUnixNano, _ = wire.FindFixed64(buf, wire.LogRecordObservedTimeUnixNano)
	sev, _ := wire.FindVarint(buf, wire.LogRecordSeverityNumber)
	lr.severityNumber = int32(sev) //nolint:gosec // enum values are encoded as int32 varints
	lr.severityText = findString(buf, wire.LogRecordSeverityText)

	lr.body.reset()
	if b, ok := wire.FindBytes(buf, wire.LogRecordBody); ok {
		lr.body.parse(b)
	}

	parseAttributes(buf, wire.LogRecordAttributes, &lr.attributes)
	lr.dropped = findUint32(buf, wire.LogRecordDroppedAttributesCount)
	lr.flags, lr.hasFlags = wire.FindFixed32(buf, wire.LogRecordFlags)
	lr.traceID, lr.hasTraceID = findID(buf, wire.LogRecordTraceID)
	lr.spanID, lr.hasSpanID = findID(buf, wire.LogRecordSpanID)
	lr.eventName = findString(buf, wire.LogRecordEventName)
	return true
}

// TimeUnixNano returns the time the event occurred, if set.
func (lr *LogRecord) TimeUnixNano() (uint64, bool) {
	return lr.timeUnixNano, lr.hasTime
}

// ObservedTimeUnixNano returns the time the event was observed, or 0.
func (lr *LogRecord) ObservedTimeUnixNano() uint64 {
	return lr.observedTimeUnixNano
}

// Timestamp returns the record time, falling back to a non-zero observed time.
func (lr *LogRecord) Timestamp() (uint64, bool) {
	if lr.hasTime {
		return lr.timeUnixNano, true
	}
	return lr.observedTimeUnixNano, lr.observedTimeUnixNano != 0
}

// SeverityNumber returns the numerical severity, or 0 when unspecified.
func (lr *LogRecord) SeverityNumber() int32 {
	return lr.severityNumber
}

// SeverityText returns the severity as known at the source.
func (lr *LogRecord) SeverityText() string {
	return lr.severityText
}

// Body returns the record body. A missing body is an empty value.
func (lr *LogRecord) Body() logsview.AnyValueView {
	return &lr.body
}

// BodyNode returns the body value node.
func (lr *LogRecord) BodyNode() *AnyValue {
	return &lr.body
}

// AttributesLen returns the number of decoded attributes.
func (lr *LogRecord) AttributesLen() int {
	return lr.attributes.len()
}

// AttributeAt returns the attribute at index i.
func (lr *LogRecord) AttributeAt(i int) *KeyValue {
	return lr.attributes.at(i)
}

// Attributes iterates the record attributes in wire order.
func (lr *LogRecord) Attributes() iter.Seq[logsview.AttributeView] {
	return attributesSeq(&lr.attributes)
}

// DroppedAttributesCount returns the number of attributes discarded at the source.
func (lr *LogRecord) DroppedAttributesCount() uint32 {
	return lr.dropped
}

// Flags returns the W3C trace flags field, if set.
func (lr *LogRecord) Flags() (uint32, bool) {
	return lr.flags, lr.hasFlags
}

// TraceID returns the trace id. An empty id is reported as absent.
func (lr *LogRecord) TraceID() ([]byte, bool) {
	return lr.traceID, lr.hasTraceID
}

// SpanID returns the span id. An empty id is reported as absent.
func (lr *LogRecord) SpanID() ([]byte, bool) {
	return lr.spanID, lr.hasSpanID
}

// EventName returns the name identifying the event, if any.
func (lr *LogRecord) EventName() string {
	return lr.eventName
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

// findID returns the id stored at field num. An empty id is the proto3
// default and is reported as absent.
func findID(buf []byte, num uint32) ([]byte, bool) {
	id, ok := wire.FindBytes(buf, num)
	if !ok || len(id) == 0 {
		return nil, false
	}
	return id, true
}
