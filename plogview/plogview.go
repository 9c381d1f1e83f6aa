// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package plogview exposes pdata plog.Logs through the logsview interfaces.
//
// It is the reference implementation the wire decoders are compared against:
// the payload is fully unmarshaled into pdata's in-memory tree before being
// traversed. Fields pdata does not encode when they hold their zero value,
// such as the event time, flags and ids, are reported as absent when zero.
package plogview // import "go.opentelemetry.io/collector/logsview/plogview"

import (
	"iter"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/plog"

	"go.opentelemetry.io/collector/logsview"
)

var (
	_ logsview.LogsView         = Logs{}
	_ logsview.ResourceLogsView = resourceLogs{}
	_ logsview.ResourceView     = resource{}
	_ logsview.ScopeLogsView    = scopeLogs{}
	_ logsview.ScopeView        = scope{}
	_ logsview.LogRecordView    = logRecord{}
	_ logsview.AttributeView    = attribute{}
	_ logsview.AnyValueView     = value{}
)

// Logs adapts plog.Logs.
type Logs struct {
	ld plog.Logs
}

// New returns a view over ld.
func New(ld plog.Logs) Logs {
	return Logs{ld: ld}
}

// Unmarshal decodes an OTLP logs payload with the pdata protobuf unmarshaler.
func Unmarshal(buf []byte) (Logs, error) {
	ld, err := (&plog.ProtoUnmarshaler{}).UnmarshalLogs(buf)
	if err != nil {
		return Logs{}, err
	}
	return New(ld), nil
}

// Logs returns the underlying pdata logs.
func (l Logs) Logs() plog.Logs {
	return l.ld
}

func (l Logs) ResourceLogs() iter.Seq[logsview.ResourceLogsView] {
	return func(yield func(logsview.ResourceLogsView) bool) {
		rls := l.ld.ResourceLogs()
		for i := 0; i < rls.Len(); i++ {
			if !yield(resourceLogs{rls.At(i)}) {
				return
			}
		}
	}
}

type resourceLogs struct {
	orig plog.ResourceLogs
}

func (rl resourceLogs) Resource() logsview.ResourceView {
	return resource{rl.orig.Resource()}
}

func (rl resourceLogs) ScopeLogs() iter.Seq[logsview.ScopeLogsView] {
	return func(yield func(logsview.ScopeLogsView) bool) {
		sls := rl.orig.ScopeLogs()
		for i := 0; i < sls.Len(); i++ {
			if !yield(scopeLogs{sls.At(i)}) {
				return
			}
		}
	}
}

func (rl resourceLogs) SchemaURL() string {
	return rl.orig.SchemaUrl()
}

type resource struct {
	orig pcommon.Resource
}

func (r resource) Attributes() iter.Seq[logsview.AttributeView] {
	return attributes(r.orig.Attributes())
}

func (r resource) DroppedAttributesCount() uint32 {
	return r.orig.DroppedAttributesCount()
}

type scopeLogs struct {
	orig plog.ScopeLogs
}

func (sl scopeLogs) Scope() logsview.ScopeView {
	return scope{sl.orig.Scope()}
}

func (sl scopeLogs) LogRecords() iter.Seq[logsview.LogRecordView] {
	return func(yield func(logsview.LogRecordView) bool) {
		lrs := sl.orig.LogRecords()
		for i := 0; i < lrs.Len(); i++ {
			if !yield(logRecord{lrs.At(i)}) {
				return
			}
		}
	}
}

func (sl scopeLogs) SchemaURL() string {
	return sl.orig.SchemaUrl()
}

type scope struct {
	orig pcommon.InstrumentationScope
}

func (s scope) Name() string {
	return s.orig.Name()
}

func (s scope) Version() string {
	return s.orig.Version()
}

func (s scope) Attributes() iter.Seq[logsview.AttributeView] {
	return attributes(s.orig.Attributes())
}

func (s scope) DroppedAttributesCount() uint32 {
	return s.orig.DroppedAttributesCount()
}

type logRecord struct {
	orig plog.LogRecord
}

func (lr logRecord) TimeUnixNano() (uint64, bool) {
	ts := uint64(lr.orig.Timestamp())
	return ts, ts != 0
}

func (lr logRecord) ObservedTimeUnixNano() uint64 {
	return uint64(lr.orig.ObservedTimestamp())
}

func (lr logRecord) SeverityNumber() int32 {
	return int32(lr.orig.SeverityNumber())
}

func (lr logRecord) SeverityText() string {
	return lr.orig.SeverityText()
}

func (lr logRecord) Body() logsview.AnyValueView {
	return value{lr.orig.Body()}
}

func (lr logRecord) Attributes() iter.Seq[logsview.AttributeView] {
	return attributes(lr.orig.Attributes())
}

func (lr logRecord) DroppedAttributesCount() uint32 {
	return lr.orig.DroppedAttributesCount()
}

func (lr logRecord) Flags() (uint32, bool) {
	flags := uint32(lr.orig.Flags())
	return flags, flags != 0
}

func (lr logRecord) TraceID() ([]byte, bool) {
	id := lr.orig.TraceID()
	if id.IsEmpty() {
		return nil, false
	}
	return id[:], true
}

func (lr logRecord) SpanID() ([]byte, bool) {
	id := lr.orig.SpanID()
	if id.IsEmpty() {
		return nil, false
	}
	return id[:], true
}

func (lr logRecord) EventName() string {
	return lr.orig.EventName()
}

// attributes iterates m, skipping entries with an empty key.
func attributes(m pcommon.Map) iter.Seq[logsview.AttributeView] {
	return func(yield func(logsview.AttributeView) bool) {
		m.Range(func(k string, v pcommon.Value) bool {
			if k == "" {
				return true
			}
			return yield(attribute{key: k, val: v})
		})
	}
}

type attribute struct {
	key string
	val pcommon.Value
}

func (a attribute) Key() string {
	return a.key
}

func (a attribute) Value() logsview.AnyValueView {
	return value{a.val}
}

type value struct {
	orig pcommon.Value
}

func (v value) Type() logsview.ValueType {
	switch v.orig.Type() {
	case pcommon.ValueTypeStr:
		return logsview.ValueTypeStr
	case pcommon.ValueTypeBool:
		return logsview.ValueTypeBool
	case pcommon.ValueTypeInt:
		return logsview.ValueTypeInt
	case pcommon.ValueTypeDouble:
		return logsview.ValueTypeDouble
	case pcommon.ValueTypeSlice:
		return logsview.ValueTypeArray
	case pcommon.ValueTypeMap:
		return logsview.ValueTypeKeyValueList
	case pcommon.ValueTypeBytes:
		return logsview.ValueTypeBytes
	}
	return logsview.ValueTypeEmpty
}

func (v value) Str() (string, bool) {
	if v.orig.Type() != pcommon.ValueTypeStr {
		return "", false
	}
	return v.orig.Str(), true
}

func (v value) Bool() (bool, bool) {
	if v.orig.Type() != pcommon.ValueTypeBool {
		return false, false
	}
	return v.orig.Bool(), true
}

func (v value) Int() (int64, bool) {
	if v.orig.Type() != pcommon.ValueTypeInt {
		return 0, false
	}
	return v.orig.Int(), true
}

func (v value) Double() (float64, bool) {
	if v.orig.Type() != pcommon.ValueTypeDouble {
		return 0, false
	}
	return v.orig.Double(), true
}

func (v value) Bytes() ([]byte, bool) {
	if v.orig.Type() != pcommon.ValueTypeBytes {
		return nil, false
	}
	return v.orig.Bytes().AsRaw(), true
}

func (v value) Array() (iter.Seq[logsview.AnyValueView], bool) {
	if v.orig.Type() != pcommon.ValueTypeSlice {
		return nil, false
	}
	s := v.orig.Slice()
	return func(yield func(logsview.AnyValueView) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(value{s.At(i)}) {
				return
			}
		}
	}, true
}

func (v value) KeyValueList() (iter.Seq[logsview.AttributeView], bool) {
	if v.orig.Type() != pcommon.ValueTypeMap {
		return nil, false
	}
	return attributes(v.orig.Map()), true
}
