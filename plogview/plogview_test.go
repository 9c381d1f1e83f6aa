// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package plogview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/plog"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/logsviewtest"
)

func TestFixtureCounts(t *testing.T) {
	l := New(logsviewtest.GenerateLogs())
	assert.Equal(t, logsview.Counts{Resources: 2, Scopes: 3, Records: 4, Attributes: 13}, logsview.Count(l))
}

func TestUnmarshal(t *testing.T) {
	ld := logsviewtest.GenerateLogs()
	l, err := Unmarshal(logsviewtest.Marshal(t, ld))
	require.NoError(t, err)
	assert.Equal(t, logsviewtest.Flatten(New(ld)), logsviewtest.Flatten(l))
	assert.Equal(t, 4, l.Logs().LogRecordCount())

	_, err = Unmarshal([]byte{0x0a, 0x05})
	require.Error(t, err)
}

func TestZeroFieldsAreAbsent(t *testing.T) {
	ld := plog.NewLogs()
	lr := ld.ResourceLogs().AppendEmpty().ScopeLogs().AppendEmpty().LogRecords().AppendEmpty()

	var got logsview.LogRecordView
	for rec := range logsview.LogRecords(New(ld)) {
		got = rec
	}
	require.NotNil(t, got)
	_, ok := got.TimeUnixNano()
	assert.False(t, ok)
	_, ok = got.Flags()
	assert.False(t, ok)
	_, ok = got.TraceID()
	assert.False(t, ok)
	_, ok = got.SpanID()
	assert.False(t, ok)
	assert.Equal(t, logsview.ValueTypeEmpty, got.Body().Type())

	lr.SetTimestamp(pcommon.Timestamp(7))
	lr.SetFlags(plog.DefaultLogRecordFlags.WithIsSampled(true))
	lr.SetTraceID(pcommon.TraceID{15: 1})
	ts, ok := got.TimeUnixNano()
	require.True(t, ok)
	assert.Equal(t, uint64(7), ts)
	assert.Equal(t, uint8(1), logsview.TraceFlags(got))
	assert.True(t, logsview.IsValidTraceID(got))
	assert.False(t, logsview.IsValidSpanID(got))
}

func TestEmptyKeysAreSkipped(t *testing.T) {
	m := pcommon.NewMap()
	m.PutStr("", "dropped")
	m.PutStr("kept", "v")
	var keys []string
	for kv := range attributes(m) {
		keys = append(keys, kv.Key())
	}
	assert.Equal(t, []string{"kept"}, keys)
}

func TestValueTypes(t *testing.T) {
	tests := []struct {
		name string
		set  func(pcommon.Value)
		want logsview.ValueType
	}{
		{name: "empty", set: func(pcommon.Value) {}, want: logsview.ValueTypeEmpty},
		{name: "str", set: func(v pcommon.Value) { v.SetStr("s") }, want: logsview.ValueTypeStr},
		{name: "bool", set: func(v pcommon.Value) { v.SetBool(true) }, want: logsview.ValueTypeBool},
		{name: "int", set: func(v pcommon.Value) { v.SetInt(1) }, want: logsview.ValueTypeInt},
		{name: "double", set: func(v pcommon.Value) { v.SetDouble(1) }, want: logsview.ValueTypeDouble},
		{name: "slice", set: func(v pcommon.Value) { v.SetEmptySlice() }, want: logsview.ValueTypeArray},
		{name: "map", set: func(v pcommon.Value) { v.SetEmptyMap() }, want: logsview.ValueTypeKeyValueList},
		{name: "bytes", set: func(v pcommon.Value) { v.SetEmptyBytes() }, want: logsview.ValueTypeBytes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := pcommon.NewValueEmpty()
			tt.set(v)
			view := value{v}
			assert.Equal(t, tt.want, view.Type())
			_, isStr := view.Str()
			assert.Equal(t, tt.want == logsview.ValueTypeStr, isStr)
			_, isArray := view.Array()
			assert.Equal(t, tt.want == logsview.ValueTypeArray, isArray)
			_, isMap := view.KeyValueList()
			assert.Equal(t, tt.want == logsview.ValueTypeKeyValueList, isMap)
		})
	}
}
