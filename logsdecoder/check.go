// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logsdecoder // import "go.opentelemetry.io/collector/logsview/logsdecoder"

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"

	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var (
	// ErrWireTypeMismatch is reported when a known field is encoded with an
	// unexpected wire type.
	ErrWireTypeMismatch = errors.New("proto: wire type mismatch")
	// ErrInvalidUTF8 is reported for string fields that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("proto: invalid UTF-8")
	// ErrInvalidIDLength is reported for trace and span ids of the wrong size.
	ErrInvalidIDLength = errors.New("proto: invalid id length")
	// ErrMaxDepth is reported when values nest deeper than maxNestingDepth.
	ErrMaxDepth = errors.New("proto: exceeded maximum nesting depth")
)

const maxNestingDepth = 64

type fieldKind uint8

const (
	kindScalar fieldKind = iota
	kindString
	kindMessage
	kindID
)

type fieldSchema struct {
	name     string
	wt       wire.WireType
	kind     fieldKind
	repeated bool
	// idSize is the exact length of a kindID field.
	idSize int
	child  *messageSchema
}

type messageSchema struct {
	fields map[uint32]fieldSchema
}

var (
	logsDataSchema     = &messageSchema{}
	resourceLogsSchema = &messageSchema{}
	resourceSchema     = &messageSchema{}
	scopeLogsSchema    = &messageSchema{}
	scopeSchema        = &messageSchema{}
	logRecordSchema    = &messageSchema{}
	keyValueSchema     = &messageSchema{}
	anyValueSchema     = &messageSchema{}
	arrayValueSchema   = &messageSchema{}
	kvListSchema       = &messageSchema{}
)

func message(name string, child *messageSchema) fieldSchema {
	return fieldSchema{name: name, wt: wire.WireTypeLen, kind: kindMessage, child: child}
}

func repeatedMessage(name string, child *messageSchema) fieldSchema {
	return fieldSchema{name: name, wt: wire.WireTypeLen, kind: kindMessage, child: child, repeated: true}
}

func str(name string) fieldSchema {
	return fieldSchema{name: name, wt: wire.WireTypeLen, kind: kindString}
}

func scalar(name string, wt wire.WireType) fieldSchema {
	return fieldSchema{name: name, wt: wt, kind: kindScalar}
}

func id(name string, size int) fieldSchema {
	return fieldSchema{name: name, wt: wire.WireTypeLen, kind: kindID, idSize: size}
}

func init() {
	logsDataSchema.fields = map[uint32]fieldSchema{
		wire.LogsDataResourceLogs: repeatedMessage("resource_logs", resourceLogsSchema),
	}
	resourceLogsSchema.fields = map[uint32]fieldSchema{
		wire.ResourceLogsResource:  message("resource", resourceSchema),
		wire.ResourceLogsScopeLogs: repeatedMessage("scope_logs", scopeLogsSchema),
		wire.ResourceLogsSchemaURL: str("schema_url"),
	}
	resourceSchema.fields = map[uint32]fieldSchema{
		wire.ResourceAttributes:             repeatedMessage("attributes", keyValueSchema),
		wire.ResourceDroppedAttributesCount: scalar("dropped_attributes_count", wire.WireTypeVarint),
	}
	scopeLogsSchema.fields = map[uint32]fieldSchema{
		wire.ScopeLogsScope:      message("scope", scopeSchema),
		wire.ScopeLogsLogRecords: repeatedMessage("log_records", logRecordSchema),
		wire.ScopeLogsSchemaURL:  str("schema_url"),
	}
	scopeSchema.fields = map[uint32]fieldSchema{
		wire.ScopeName:                   str("name"),
		wire.ScopeVersion:                str("version"),
		wire.ScopeAttributes:             repeatedMessage("attributes", keyValueSchema),
		wire.ScopeDroppedAttributesCount: scalar("dropped_attributes_count", wire.WireTypeVarint),
	}
	logRecordSchema.fields = map[uint32]fieldSchema{
		wire.LogRecordTimeUnixNano:           scalar("time_unix_nano", wire.WireTypeI64),
		wire.LogRecordSeverityNumber:         scalar("severity_number", wire.WireTypeVarint),
		wire.LogRecordSeverityText:           str("severity_text"),
		wire.LogRecordBody:                   message("body", anyValueSchema),
		wire.LogRecordAttributes:             repeatedMessage("attributes", keyValueSchema),
		wire.LogRecordDroppedAttributesCount: scalar("dropped_attributes_count", wire.WireTypeVarint),
		wire.LogRecordFlags:                  scalar("flags", wire.WireTypeI32),
		wire.LogRecordTraceID:                id("trace_id", wire.TraceIDSize),
		wire.LogRecordSpanID:                 id("span_id", wire.SpanIDSize),
		wire.LogRecordObservedTimeUnixNano:   scalar("observed_time_unix_nano", wire.WireTypeI64),
		wire.LogRecordEventName:              str("event_name"),
	}
	keyValueSchema.fields = map[uint32]fieldSchema{
		wire.KeyValueKey:   str("key"),
		wire.KeyValueValue: message("value", anyValueSchema),
	}
	anyValueSchema.fields = map[uint32]fieldSchema{
		wire.AnyValueString:    str("string_value"),
		wire.AnyValueBool:      scalar("bool_value", wire.WireTypeVarint),
		wire.AnyValueInt:       scalar("int_value", wire.WireTypeVarint),
		wire.AnyValueDouble:    scalar("double_value", wire.WireTypeI64),
		wire.AnyValueArray:     message("array_value", arrayValueSchema),
		wire.AnyValueKeyValues: message("kvlist_value", kvListSchema),
		wire.AnyValueBytes:     scalar("bytes_value", wire.WireTypeLen),
	}
	arrayValueSchema.fields = map[uint32]fieldSchema{
		wire.ArrayValueValues: repeatedMessage("values", anyValueSchema),
	}
	kvListSchema.fields = map[uint32]fieldSchema{
		wire.KeyValueListValues: repeatedMessage("values", keyValueSchema),
	}
}

// path is the location of a field, rendered only when an error is reported.
type path struct {
	parent *path
	name   string
	// index is -1 for singular fields.
	index int
}

func (p *path) String() string {
	if p == nil {
		return "logs_data"
	}
	var sb strings.Builder
	p.write(&sb)
	return sb.String()
}

func (p *path) write(sb *strings.Builder) {
	if p.parent != nil {
		p.parent.write(sb)
		sb.WriteByte('.')
	}
	sb.WriteString(p.name)
	if p.index >= 0 {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(p.index))
		sb.WriteByte(']')
	}
}

// Check walks the complete OTLP logs schema of buf and reports every
// malformation the lenient views would silently skip: unsupported wire
// types, truncated fields, known fields with the wrong wire type, invalid
// UTF-8 in string fields, and non-empty trace or span ids of the wrong
// length. Unknown fields are skipped. The returned error combines all
// findings and can be split with multierr.Errors.
func Check(buf []byte) error {
	return checkMessage(buf, logsDataSchema, nil, 0)
}

func checkMessage(buf []byte, schema *messageSchema, at *path, depth int) error {
	if depth > maxNestingDepth {
		return fmt.Errorf("%s: %w", at, ErrMaxDepth)
	}
	var errs error
	counts := map[uint32]int{}
	scanErr := wire.Scan(buf, func(f wire.Field) bool {
		fs, known := schema.fields[f.Num]
		if !known {
			return true
		}
		fp := &path{parent: at, name: fs.name, index: -1}
		if fs.repeated {
			fp.index = counts[f.Num]
			counts[f.Num]++
		}
		if f.Type != fs.wt {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w: got %s, want %s", fp, ErrWireTypeMismatch, f.Type, fs.wt))
			return true
		}
		if fs.wt != wire.WireTypeLen {
			return true
		}
		b, ok := f.Bytes(buf)
		if !ok {
			// Scan reports the truncation after this callback.
			return true
		}
		switch fs.kind {
		case kindString:
			if !utf8.Valid(b) {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", fp, ErrInvalidUTF8))
			}
		case kindID:
			// An empty id is the proto3 default for an unset id.
			if len(b) != 0 && len(b) != fs.idSize {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w: got %d bytes, want %d", fp, ErrInvalidIDLength, len(b), fs.idSize))
			}
		case kindMessage:
			errs = multierr.Append(errs, checkMessage(b, fs.child, fp, depth+1))
		}
		return true
	})
	if scanErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", at, scanErr))
	}
	return errs
}
