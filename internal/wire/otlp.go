// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package wire // import "go.opentelemetry.io/collector/logsview/internal/wire"

// Field numbers of opentelemetry/proto/logs/v1, common/v1 and resource/v1.
const (
	LogsDataResourceLogs uint32 = 1

	ResourceLogsResource  uint32 = 1
	ResourceLogsScopeLogs uint32 = 2
	ResourceLogsSchemaURL uint32 = 3

	ResourceAttributes             uint32 = 1
	ResourceDroppedAttributesCount uint32 = 2

	ScopeLogsScope      uint32 = 1
	ScopeLogsLogRecords uint32 = 2
	ScopeLogsSchemaURL  uint32 = 3

	ScopeName                   uint32 = 1
	ScopeVersion                uint32 = 2
	ScopeAttributes             uint32 = 3
	ScopeDroppedAttributesCount uint32 = 4

	LogRecordTimeUnixNano           uint32 = 1
	LogRecordSeverityNumber         uint32 = 2
	LogRecordSeverityText           uint32 = 3
	LogRecordBody                   uint32 = 5
	LogRecordAttributes             uint32 = 6
	LogRecordDroppedAttributesCount uint32 = 7
	LogRecordFlags                  uint32 = 8
	LogRecordTraceID                uint32 = 9
	LogRecordSpanID                 uint32 = 10
	LogRecordObservedTimeUnixNano   uint32 = 11
	LogRecordEventName              uint32 = 12

	KeyValueKey   uint32 = 1
	KeyValueValue uint32 = 2

	AnyValueString    uint32 = 1
	AnyValueBool      uint32 = 2
	AnyValueInt       uint32 = 3
	AnyValueDouble    uint32 = 4
	AnyValueArray     uint32 = 5
	AnyValueKeyValues uint32 = 6
	AnyValueBytes     uint32 = 7

	ArrayValueValues   uint32 = 1
	KeyValueListValues uint32 = 1
)

// MaxLogRecordField is the highest known LogRecord field number.
const MaxLogRecordField = LogRecordEventName

// TraceIDSize and SpanIDSize are the exact byte lengths of valid ids.
const (
	TraceIDSize = 16
	SpanIDSize  = 8
)
