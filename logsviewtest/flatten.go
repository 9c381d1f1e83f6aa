// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logsviewtest // import "go.opentelemetry.io/collector/logsview/logsviewtest"

import (
	"encoding/hex"
	"iter"

	"go.opentelemetry.io/collector/logsview"
)

// FlatResource is a plain copy of a logsview.ResourceLogsView, comparable with
// go-cmp.
type FlatResource struct {
	Attributes []FlatAttribute
	Dropped    uint32
	SchemaURL  string
	Scopes     []FlatScope
}

// FlatScope is a plain copy of a logsview.ScopeLogsView.
type FlatScope struct {
	Name       string
	Version    string
	Attributes []FlatAttribute
	Dropped    uint32
	SchemaURL  string
	Records    []FlatRecord
}

// FlatRecord is a plain copy of a logsview.LogRecordView.
type FlatRecord struct {
	Time           uint64
	HasTime        bool
	ObservedTime   uint64
	SeverityNumber int32
	SeverityText   string
	Body           FlatValue
	Attributes     []FlatAttribute
	Dropped        uint32
	Flags          uint32
	HasFlags       bool
	TraceID        string
	HasTraceID     bool
	SpanID         string
	HasSpanID      bool
	EventName      string
}

// FlatAttribute is a plain copy of a logsview.AttributeView.
type FlatAttribute struct {
	Key   string
	Value FlatValue
}

// FlatValue is a plain copy of a logsview.AnyValueView. Bytes are hex encoded.
type FlatValue struct {
	Type         string
	Str          string
	Bool         bool
	Int          int64
	Double       float64
	Bytes        string
	Array        []FlatValue
	KeyValueList []FlatAttribute
}

// Flatten copies the whole payload into plain structs.
func Flatten(ld logsview.LogsView) []FlatResource {
	var out []FlatResource
	for rl := range ld.ResourceLogs() {
		res := rl.Resource()
		r := FlatResource{
			Attributes: flattenAttributes(res.Attributes()),
			Dropped:    res.DroppedAttributesCount(),
			SchemaURL:  rl.SchemaURL(),
		}
		for sl := range rl.ScopeLogs() {
			scope := sl.Scope()
			s := FlatScope{
				Name:       scope.Name(),
				Version:    scope.Version(),
				Attributes: flattenAttributes(scope.Attributes()),
				Dropped:    scope.DroppedAttributesCount(),
				SchemaURL:  sl.SchemaURL(),
			}
			for lr := range sl.LogRecords() {
				s.Records = append(s.Records, FlattenRecord(lr))
			}
			r.Scopes = append(r.Scopes, s)
		}
		out = append(out, r)
	}
	return out
}

// FlattenRecord copies a single log record.
func FlattenRecord(lr logsview.LogRecordView) FlatRecord {
	rec := FlatRecord{
		ObservedTime:   lr.ObservedTimeUnixNano(),
		SeverityNumber: lr.SeverityNumber(),
		SeverityText:   lr.SeverityText(),
		Body:           FlattenValue(lr.Body()),
		Attributes:     flattenAttributes(lr.Attributes()),
		Dropped:        lr.DroppedAttributesCount(),
		EventName:      lr.EventName(),
	}
	rec.Time, rec.HasTime = lr.TimeUnixNano()
	rec.Flags, rec.HasFlags = lr.Flags()
	if id, ok := lr.TraceID(); ok {
		rec.TraceID, rec.HasTraceID = hex.EncodeToString(id), true
	}
	if id, ok := lr.SpanID(); ok {
		rec.SpanID, rec.HasSpanID = hex.EncodeToString(id), true
	}
	return rec
}

// FlattenValue copies a value, recursing into arrays and key/value lists.
func FlattenValue(v logsview.AnyValueView) FlatValue {
	out := FlatValue{Type: v.Type().String()}
	switch v.Type() {
	case logsview.ValueTypeStr:
		out.Str, _ = v.Str()
	case logsview.ValueTypeBool:
		out.Bool, _ = v.Bool()
	case logsview.ValueTypeInt:
		out.Int, _ = v.Int()
	case logsview.ValueTypeDouble:
		out.Double, _ = v.Double()
	case logsview.ValueTypeBytes:
		b, _ := v.Bytes()
		out.Bytes = hex.EncodeToString(b)
	case logsview.ValueTypeArray:
		values, _ := v.Array()
		for elem := range values {
			out.Array = append(out.Array, FlattenValue(elem))
		}
	case logsview.ValueTypeKeyValueList:
		kvs, _ := v.KeyValueList()
		out.KeyValueList = flattenAttributes(kvs)
	}
	return out
}

func flattenAttributes(attrs iter.Seq[logsview.AttributeView]) []FlatAttribute {
	var out []FlatAttribute
	for kv := range attrs {
		out = append(out, FlatAttribute{Key: kv.Key(), Value: FlattenValue(kv.Value())})
	}
	return out
}
