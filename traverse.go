// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logsview // import "go.opentelemetry.io/collector/logsview"

import (
	"iter"

	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"

	"go.opentelemetry.io/collector/logsview/internal/wire"
)

// UnknownServiceName is returned by ServiceName for resources without a
// string service.name attribute.
const UnknownServiceName = "unknown-service"

// Counts is the number of entities of each kind in a payload.
type Counts struct {
	Resources int
	Scopes    int
	Records   int
	// Attributes counts log record attributes only.
	Attributes int
}

// Count walks the whole payload and counts its entities.
func Count(ld LogsView) Counts {
	var c Counts
	for rl := range ld.ResourceLogs() {
		c.Resources++
		for sl := range rl.ScopeLogs() {
			c.Scopes++
			for lr := range sl.LogRecords() {
				c.Records++
				c.Attributes += Len(lr.Attributes())
			}
		}
	}
	return c
}

// Len consumes seq and returns the number of elements it produced.
func Len[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Walk calls fn for every log record together with its enclosing resource and
// scope groups, in wire order, until fn returns false.
func Walk(ld LogsView, fn func(ResourceLogsView, ScopeLogsView, LogRecordView) bool) {
	for rl := range ld.ResourceLogs() {
		for sl := range rl.ScopeLogs() {
			for lr := range sl.LogRecords() {
				if !fn(rl, sl, lr) {
					return
				}
			}
		}
	}
}

// LogRecords iterates every log record of the payload in wire order.
func LogRecords(ld LogsView) iter.Seq[LogRecordView] {
	return func(yield func(LogRecordView) bool) {
		Walk(ld, func(_ ResourceLogsView, _ ScopeLogsView, lr LogRecordView) bool {
			return yield(lr)
		})
	}
}

// Get returns the value of the first attribute named key.
func Get(attrs iter.Seq[AttributeView], key string) (AnyValueView, bool) {
	for kv := range attrs {
		if kv.Key() == key {
			return kv.Value(), true
		}
	}
	return nil, false
}

// ServiceName returns the string value of the service.name resource
// attribute, or UnknownServiceName.
func ServiceName(res ResourceView) string {
	v, ok := Get(res.Attributes(), string(semconv.ServiceNameKey))
	if !ok {
		return UnknownServiceName
	}
	if s, ok := v.Str(); ok {
		return s
	}
	return UnknownServiceName
}

// Timestamp returns the record time, falling back to the observed time when
// the record has no explicit time. A zero observed time is reported as absent.
func Timestamp(lr LogRecordView) (uint64, bool) {
	if ts, ok := lr.TimeUnixNano(); ok {
		return ts, true
	}
	if ts := lr.ObservedTimeUnixNano(); ts != 0 {
		return ts, true
	}
	return 0, false
}

// IsValidTraceID reports whether the record carries a 16 byte trace id that
// is not all zeros.
func IsValidTraceID(lr LogRecordView) bool {
	id, ok := lr.TraceID()
	if !ok || len(id) != wire.TraceIDSize {
		return false
	}
	return trace.TraceID(id).IsValid()
}

// IsValidSpanID reports whether the record carries an 8 byte span id that is
// not all zeros.
func IsValidSpanID(lr LogRecordView) bool {
	id, ok := lr.SpanID()
	if !ok || len(id) != wire.SpanIDSize {
		return false
	}
	return trace.SpanID(id).IsValid()
}

// TraceFlags returns the W3C trace flags stored in the low byte of the
// record flags.
func TraceFlags(lr LogRecordView) uint8 {
	flags, _ := lr.Flags()
	return uint8(flags & 0xff)
}
