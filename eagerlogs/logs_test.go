// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package eagerlogs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/plog"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/logsviewtest"
	"go.opentelemetry.io/collector/logsview/plogview"
)

func TestParseFixture(t *testing.T) {
	buf := logsviewtest.Marshal(t, logsviewtest.GenerateLogs())
	ld := NewLogs()
	require.True(t, ld.Parse(buf))

	assert.Equal(t, logsview.Counts{Resources: 2, Scopes: 3, Records: 4, Attributes: 13}, logsview.Count(ld))

	require.Equal(t, 2, ld.ResourceLogsLen())
	rl := ld.ResourceLogsAt(0)
	assert.Equal(t, "web-server", rl.ResourceNode().ServiceName())
	assert.Equal(t, "background-worker", ld.ResourceLogsAt(1).ResourceNode().ServiceName())
	require.Equal(t, 2, rl.ScopeLogsLen())

	sl := rl.ScopeLogsAt(0)
	assert.Equal(t, "http-handler", sl.ScopeNode().Name())
	assert.Equal(t, "1.0.0", sl.ScopeNode().Version())
	require.Equal(t, 2, sl.LogRecordsLen())

	lr := sl.LogRecordAt(0)
	ts, ok := lr.TimeUnixNano()
	require.True(t, ok)
	assert.Equal(t, uint64(1718380800000000000), ts)
	assert.Equal(t, uint64(1718380800000000000), lr.ObservedTimeUnixNano())
	assert.Equal(t, int32(9), lr.SeverityNumber())
	assert.Equal(t, "INFO", lr.SeverityText())
	assert.Equal(t, "HTTP Request", lr.EventName())
	body, ok := lr.BodyNode().Str()
	require.True(t, ok)
	assert.Equal(t, "request_received", body)

	require.Equal(t, 4, lr.AttributesLen())
	method, ok := lr.AttributeAt(0).ValueNode().Str()
	require.True(t, ok)
	assert.Equal(t, "GET", method)
	status, ok := lr.AttributeAt(1).ValueNode().Int()
	require.True(t, ok)
	assert.Equal(t, int64(200), status)
	rt, ok := lr.AttributeAt(2).ValueNode().Double()
	require.True(t, ok)
	assert.InDelta(t, 45.7, rt, 0)
	success, ok := lr.AttributeAt(3).ValueNode().Bool()
	require.True(t, ok)
	assert.True(t, success)

	assert.False(t, lr.IsTraceIDValid())
	assert.False(t, lr.IsSpanIDValid())
	_, ok = lr.Flags()
	assert.False(t, ok)
}

func TestParseMatchesPdata(t *testing.T) {
	for name, ld := range map[string]plog.Logs{
		"fixture":   logsviewtest.GenerateLogs(),
		"all_types": logsviewtest.GenerateLogsWithAllValueTypes(),
		"empty":     plog.NewLogs(),
	} {
		t.Run(name, func(t *testing.T) {
			tree := NewLogs()
			tree.Parse(logsviewtest.Marshal(t, ld))
			want := logsviewtest.Flatten(plogview.New(ld))
			if diff := cmp.Diff(want, logsviewtest.Flatten(tree)); diff != "" {
				t.Errorf("eager tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	buf := logsviewtest.Marshal(t, logsviewtest.GenerateLogsWithAllValueTypes())
	ld := NewLogs()
	require.True(t, ld.Parse(buf))
	first := logsviewtest.Flatten(ld)
	require.True(t, ld.Parse(buf))
	assert.Equal(t, first, logsviewtest.Flatten(ld))
}

func TestParseReuseHidesStaleNodes(t *testing.T) {
	big := plog.NewLogs()
	for _, name := range []string{"a", "b", "c"} {
		rl := big.ResourceLogs().AppendEmpty()
		rl.Resource().Attributes().PutStr("service.name", name)
		sl := rl.ScopeLogs().AppendEmpty()
		lr := sl.LogRecords().AppendEmpty()
		lr.Attributes().PutStr("k1", "v1")
		lr.Attributes().PutStr("k2", "v2")
		lr.Body().SetEmptySlice().AppendEmpty().SetStr(name)
	}
	small := plog.NewLogs()
	rl := small.ResourceLogs().AppendEmpty()
	rl.Resource().Attributes().PutStr("service.name", "only")
	rl.ScopeLogs().AppendEmpty().LogRecords().AppendEmpty().Body().SetInt(7)

	ld := NewLogs()
	require.True(t, ld.Parse(logsviewtest.Marshal(t, big)))
	assert.Equal(t, 3, ld.ResourceLogsLen())

	require.True(t, ld.Parse(logsviewtest.Marshal(t, small)))
	assert.Equal(t, 1, ld.ResourceLogsLen())
	assert.Equal(t, 3, ld.resourceLogs.capacity(), "nodes are retained")
	assert.Equal(t, 1, logsview.Len(ld.ResourceLogs()))
	assert.Equal(t, "only", ld.ResourceLogsAt(0).ResourceNode().ServiceName())

	lr := ld.ResourceLogsAt(0).ScopeLogsAt(0).LogRecordAt(0)
	assert.Equal(t, 0, lr.AttributesLen())
	assert.Equal(t, 0, logsview.Len(lr.Attributes()))
	assert.Equal(t, logsview.ValueTypeInt, lr.BodyNode().Type())
	assert.Equal(t, 0, lr.BodyNode().ArrayLen())

	assert.Panics(t, func() { ld.ResourceLogsAt(1) })
	assert.Equal(t, logsviewtest.Flatten(plogview.New(small)), logsviewtest.Flatten(ld))
}

func TestParseEmptyPayload(t *testing.T) {
	ld := NewLogs()
	require.True(t, ld.Parse(logsviewtest.Marshal(t, logsviewtest.GenerateLogs())))
	assert.False(t, ld.Parse(nil))
	assert.Equal(t, 0, ld.ResourceLogsLen())
	assert.Equal(t, logsview.Counts{}, logsview.Count(ld))
}

func TestParseSkipsMalformedResourceLogs(t *testing.T) {
	good := logsviewtest.ResourceLogs(logsviewtest.Resource(
		logsviewtest.KeyValue("service.name", logsviewtest.StrValue("svc")),
	))
	buf := logsviewtest.Message(
		logsviewtest.VarintField(1, 5), // wrong wire type for a resource group
		logsviewtest.BytesField(1, good),
		logsviewtest.VarintField(99, 1), // unknown field
		logsviewtest.GroupField(7),
		logsviewtest.BytesField(1, good), // unreachable after the group
	)
	ld := NewLogs()
	require.True(t, ld.Parse(buf))
	require.Equal(t, 1, ld.ResourceLogsLen())
	assert.Equal(t, "svc", ld.ResourceLogsAt(0).ResourceNode().ServiceName())
}

func TestPool(t *testing.T) {
	buf := logsviewtest.Marshal(t, logsviewtest.GenerateLogs())
	ld := GetLogs()
	require.True(t, ld.Parse(buf))
	PutLogs(ld)

	ld = GetLogs()
	defer PutLogs(ld)
	assert.Equal(t, 0, ld.ResourceLogsLen())
	require.True(t, ld.Parse(buf))
	assert.Equal(t, 4, logsview.Count(ld).Records)
}

func TestResourceServiceNameFallback(t *testing.T) {
	tests := []struct {
		name  string
		attrs [][]byte
		want  string
	}{
		{name: "missing", want: logsview.UnknownServiceName},
		{
			name:  "not_a_string",
			attrs: [][]byte{logsviewtest.KeyValue("service.name", logsviewtest.IntValue(1))},
			want:  logsview.UnknownServiceName,
		},
		{
			name: "present",
			attrs: [][]byte{
				logsviewtest.KeyValue("host.name", logsviewtest.StrValue("h")),
				logsviewtest.KeyValue("service.name", logsviewtest.StrValue("svc")),
			},
			want: "svc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ld := NewLogs()
			require.True(t, ld.Parse(logsviewtest.LogsData(
				logsviewtest.ResourceLogs(logsviewtest.Resource(tt.attrs...)),
			)))
			res := ld.ResourceLogsAt(0).ResourceNode()
			assert.Equal(t, tt.want, res.ServiceName())
			assert.Equal(t, tt.want, logsview.ServiceName(res))
		})
	}
}

func TestLogRecordIDs(t *testing.T) {
	distinct := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	tests := []struct {
		name      string
		traceID   []byte
		spanID    []byte
		wantTrace bool
		wantSpan  bool
		absent    bool
	}{
		{name: "zeros", traceID: make([]byte, 16), spanID: make([]byte, 8)},
		{name: "distinct", traceID: distinct, spanID: distinct[:8], wantTrace: true, wantSpan: true},
		{name: "short", traceID: distinct[:15], spanID: distinct[:7]},
		{name: "long", traceID: append(distinct, 17), spanID: distinct[:9]},
		{name: "empty", traceID: []byte{}, spanID: []byte{}, absent: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ld := NewLogs()
			require.True(t, ld.Parse(recordPayload(
				logsviewtest.BytesField(9, tt.traceID),
				logsviewtest.BytesField(10, tt.spanID),
				logsviewtest.Fixed32Field(8, 0x0301),
			)))
			lr := ld.ResourceLogsAt(0).ScopeLogsAt(0).LogRecordAt(0)
			assert.Equal(t, tt.wantTrace, lr.IsTraceIDValid())
			assert.Equal(t, tt.wantTrace, logsview.IsValidTraceID(lr))
			assert.Equal(t, tt.wantSpan, lr.IsSpanIDValid())
			assert.Equal(t, tt.wantSpan, logsview.IsValidSpanID(lr))
			id, ok := lr.TraceID()
			assert.Equal(t, !tt.absent, ok)
			assert.Len(t, id, len(tt.traceID))
			_, ok = lr.SpanID()
			assert.Equal(t, !tt.absent, ok)
			assert.Equal(t, uint8(1), lr.TraceFlags())
		})
	}
}

func TestLogRecordTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		fields [][]byte
		want   uint64
		ok     bool
	}{
		{name: "explicit", fields: [][]byte{logsviewtest.Fixed64Field(1, 10), logsviewtest.Fixed64Field(11, 20)}, want: 10, ok: true},
		{name: "observed", fields: [][]byte{logsviewtest.Fixed64Field(11, 20)}, want: 20, ok: true},
		{name: "zero_observed", fields: [][]byte{logsviewtest.Fixed64Field(11, 0)}},
		{name: "none"},
		{name: "wrong_wire_type", fields: [][]byte{logsviewtest.VarintField(1, 10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ld := NewLogs()
			require.True(t, ld.Parse(recordPayload(tt.fields...)))
			lr := ld.ResourceLogsAt(0).ScopeLogsAt(0).LogRecordAt(0)
			ts, ok := lr.Timestamp()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ts)
			ts, ok = logsview.Timestamp(lr)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestLogRecordInvalidStringIsAbsent(t *testing.T) {
	ld := NewLogs()
	require.True(t, ld.Parse(recordPayload(
		logsviewtest.BytesField(3, []byte{0xff}),
		logsviewtest.StringField(12, "event"),
	)))
	lr := ld.ResourceLogsAt(0).ScopeLogsAt(0).LogRecordAt(0)
	assert.Empty(t, lr.SeverityText())
	assert.Equal(t, "event", lr.EventName())
}

// recordPayload wraps one log record made of fields into a LogsData message.
func recordPayload(fields ...[]byte) []byte {
	return logsviewtest.LogsData(
		logsviewtest.ResourceLogs(
			logsviewtest.Resource(),
			logsviewtest.ScopeLogs(logsviewtest.Scope("s", "v"), logsviewtest.LogRecord(fields...)),
		),
	)
}

func BenchmarkParse(b *testing.B) {
	buf := logsviewtest.Marshal(b, logsviewtest.GenerateLogsWithAllValueTypes())
	ld := NewLogs()
	b.ReportAllocs()
	for b.Loop() {
		if !ld.Parse(buf) {
			b.Fatal("parse failed")
		}
	}
}
