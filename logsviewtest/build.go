// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logsviewtest // import "go.opentelemetry.io/collector/logsview/logsviewtest"

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// The helpers below build hand-crafted, possibly malformed, OTLP logs
// messages. Each Field helper returns one encoded field; Message concatenates
// fields into a message body.

// Message concatenates encoded fields.
func Message(fields ...[]byte) []byte {
	var buf []byte
	for _, f := range fields {
		buf = append(buf, f...)
	}
	return buf
}

// VarintField encodes a varint field.
func VarintField(num protowire.Number, v uint64) []byte {
	buf := protowire.AppendTag(nil, num, protowire.VarintType)
	return protowire.AppendVarint(buf, v)
}

// Fixed32Field encodes a fixed32 field.
func Fixed32Field(num protowire.Number, v uint32) []byte {
	buf := protowire.AppendTag(nil, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(buf, v)
}

// Fixed64Field encodes a fixed64 field.
func Fixed64Field(num protowire.Number, v uint64) []byte {
	buf := protowire.AppendTag(nil, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(buf, v)
}

// BytesField encodes a length-delimited field. It is also used for strings
// and embedded messages.
func BytesField(num protowire.Number, b []byte) []byte {
	buf := protowire.AppendTag(nil, num, protowire.BytesType)
	return protowire.AppendBytes(buf, b)
}

// StringField encodes a string field.
func StringField(num protowire.Number, s string) []byte {
	return BytesField(num, []byte(s))
}

// GroupField encodes an empty legacy group. Decoders stop scanning the
// enclosing message when they reach it.
func GroupField(num protowire.Number) []byte {
	buf := protowire.AppendTag(nil, num, protowire.StartGroupType)
	return protowire.AppendTag(buf, num, protowire.EndGroupType)
}

// TruncatedField encodes a length-delimited field whose declared length
// exceeds the bytes that follow.
func TruncatedField(num protowire.Number) []byte {
	buf := protowire.AppendTag(nil, num, protowire.BytesType)
	return append(protowire.AppendVarint(buf, 100), 'x')
}

// LogsData encodes a LogsData message.
func LogsData(resourceLogs ...[]byte) []byte {
	return repeated(1, resourceLogs)
}

// ResourceLogs encodes a ResourceLogs message.
func ResourceLogs(resource []byte, scopeLogs ...[]byte) []byte {
	return Message(BytesField(1, resource), repeated(2, scopeLogs))
}

// Resource encodes a Resource message.
func Resource(attributes ...[]byte) []byte {
	return repeated(1, attributes)
}

// ScopeLogs encodes a ScopeLogs message.
func ScopeLogs(scope []byte, logRecords ...[]byte) []byte {
	return Message(BytesField(1, scope), repeated(2, logRecords))
}

// Scope encodes an InstrumentationScope message.
func Scope(name, version string, attributes ...[]byte) []byte {
	return Message(StringField(1, name), StringField(2, version), repeated(3, attributes))
}

// LogRecord encodes a LogRecord message from already encoded fields.
func LogRecord(fields ...[]byte) []byte {
	return Message(fields...)
}

// Attributes encodes KeyValue messages as repeated field num.
func Attributes(num protowire.Number, kvs ...[]byte) []byte {
	return repeated(num, kvs)
}

// KeyValue encodes a KeyValue message.
func KeyValue(key string, value []byte) []byte {
	return Message(StringField(1, key), BytesField(2, value))
}

// StrValue encodes an AnyValue holding a string.
func StrValue(s string) []byte {
	return StringField(1, s)
}

// BoolValue encodes an AnyValue holding a bool.
func BoolValue(b bool) []byte {
	if b {
		return VarintField(2, 1)
	}
	return VarintField(2, 0)
}

// IntValue encodes an AnyValue holding an int.
func IntValue(i int64) []byte {
	return VarintField(3, uint64(i)) //nolint:gosec // G115
}

// DoubleValue encodes an AnyValue holding a double.
func DoubleValue(d float64) []byte {
	return Fixed64Field(4, math.Float64bits(d))
}

// ArrayValue encodes an AnyValue holding an ArrayValue of the given values.
func ArrayValue(values ...[]byte) []byte {
	return BytesField(5, repeated(1, values))
}

// KeyValueListValue encodes an AnyValue holding a KeyValueList of the given
// KeyValue messages.
func KeyValueListValue(kvs ...[]byte) []byte {
	return BytesField(6, repeated(1, kvs))
}

// BytesValue encodes an AnyValue holding bytes.
func BytesValue(b []byte) []byte {
	return BytesField(7, b)
}

func repeated(num protowire.Number, msgs [][]byte) []byte {
	var buf []byte
	for _, m := range msgs {
		buf = append(buf, BytesField(num, m)...)
	}
	return buf
}
