// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package logsview defines read-only traversal interfaces over OTLP logs.
//
// The interfaces are implemented by three decoders with different memory
// strategies: eagerlogs (a reusable parse tree), lazylogs (zero-copy views
// over the encoded bytes) and plogview (an adapter over pdata plog.Logs).
// Code written against these interfaces yields identical results for all of
// them.
//
// Views produced by eagerlogs and lazylogs share memory with the encoded
// buffer they were decoded from; the buffer must not be modified while any
// view, iterator or string obtained from it is in use.
package logsview // import "go.opentelemetry.io/collector/logsview"

import "iter"

// LogsView is the root of a decoded logs payload.
type LogsView interface {
	// ResourceLogs iterates the resource groups in wire order.
	ResourceLogs() iter.Seq[ResourceLogsView]
}

// ResourceLogsView is a collection of scope groups from one Resource.
type ResourceLogsView interface {
	// Resource returns the resource. A missing resource is reported as a
	// resource without attributes.
	Resource() ResourceView
	ScopeLogs() iter.Seq[ScopeLogsView]
	SchemaURL() string
}

// ResourceView is the entity producing the telemetry.
type ResourceView interface {
	Attributes() iter.Seq[AttributeView]
	DroppedAttributesCount() uint32
}

// ScopeLogsView is a collection of log records from one instrumentation scope.
type ScopeLogsView interface {
	// Scope returns the instrumentation scope. A missing scope is reported as
	// an empty scope.
	Scope() ScopeView
	LogRecords() iter.Seq[LogRecordView]
	SchemaURL() string
}

// ScopeView is the instrumentation scope that produced the records.
type ScopeView interface {
	Name() string
	Version() string
	Attributes() iter.Seq[AttributeView]
	DroppedAttributesCount() uint32
}

// LogRecordView is a single log event.
type LogRecordView interface {
	// TimeUnixNano returns the event time, if the record carries one.
	TimeUnixNano() (uint64, bool)
	// ObservedTimeUnixNano returns the observed time, 0 when absent.
	ObservedTimeUnixNano() uint64
	SeverityNumber() int32
	SeverityText() string
	// Body returns the record body. A missing body is reported as an empty
	// value.
	Body() AnyValueView
	Attributes() iter.Seq[AttributeView]
	DroppedAttributesCount() uint32
	Flags() (uint32, bool)
	// TraceID returns the raw trace id bytes, of any length. See IsValidTraceID.
	TraceID() ([]byte, bool)
	// SpanID returns the raw span id bytes, of any length. See IsValidSpanID.
	SpanID() ([]byte, bool)
	EventName() string
}

// AttributeView is one key/value pair. Attributes with an empty key are never
// produced.
type AttributeView interface {
	Key() string
	// Value returns the attribute value. A missing value is reported as an
	// empty value.
	Value() AnyValueView
}

// AnyValueView is a dynamically typed value.
//
// Typed accessors report false when the value is of a different type; values
// are never converted.
type AnyValueView interface {
	Type() ValueType
	Str() (string, bool)
	Bool() (bool, bool)
	Int() (int64, bool)
	Double() (float64, bool)
	Bytes() ([]byte, bool)
	Array() (iter.Seq[AnyValueView], bool)
	KeyValueList() (iter.Seq[AttributeView], bool)
}
