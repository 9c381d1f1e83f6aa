// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package logsviewtest contains fixtures and helpers for testing code built on
// the logsview interfaces.
package logsviewtest // import "go.opentelemetry.io/collector/logsview/logsviewtest"

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/plog"
)

// BaseTimestamp is the time of the first record generated by GenerateLogs.
const BaseTimestamp = pcommon.Timestamp(1718380800000000000)

// GenerateLogs returns 2 resource groups, 3 scope groups, 4 log records and
// 13 log record attributes.
func GenerateLogs() plog.Logs {
	ld := plog.NewLogs()

	web := ld.ResourceLogs().AppendEmpty()
	web.Resource().Attributes().PutStr("service.name", "web-server")
	web.Resource().Attributes().PutStr("service.version", "1.2.3")
	web.Resource().Attributes().PutStr("deployment.environment", "production")

	http := web.ScopeLogs().AppendEmpty()
	http.Scope().SetName("http-handler")
	http.Scope().SetVersion("1.0.0")

	lr := newRecord(http, 0, plog.SeverityNumberInfo, "INFO", "request_received", "HTTP Request")
	lr.Attributes().PutStr("method", "GET")
	lr.Attributes().PutInt("status_code", 200)
	lr.Attributes().PutDouble("response_time_ms", 45.7)
	lr.Attributes().PutBool("success", true)

	lr = newRecord(http, 1, plog.SeverityNumberError, "ERROR", "request_failed", "HTTP Error")
	lr.Attributes().PutStr("method", "POST")
	lr.Attributes().PutInt("status_code", 500)
	lr.Attributes().PutStr("error_message", "Database connection failed")

	db := web.ScopeLogs().AppendEmpty()
	db.Scope().SetName("database-connector")
	db.Scope().SetVersion("2.1.0")

	lr = newRecord(db, 2, plog.SeverityNumberDebug, "DEBUG", "connection_established", "DB Connection")
	lr.Attributes().PutStr("db.name", "users_db")
	lr.Attributes().PutInt("connection_pool_size", 10)
	lr.Attributes().PutDouble("connection_timeout_ms", 5000.0)

	worker := ld.ResourceLogs().AppendEmpty()
	worker.Resource().Attributes().PutStr("service.name", "background-worker")
	worker.Resource().Attributes().PutStr("service.version", "0.9.1")
	worker.Resource().Attributes().PutInt("worker.id", 42)

	jobs := worker.ScopeLogs().AppendEmpty()
	jobs.Scope().SetName("job-processor")
	jobs.Scope().SetVersion("3.0.0")

	lr = newRecord(jobs, 3, plog.SeverityNumberInfo, "INFO", "job_started", "Job Processing")
	lr.Attributes().PutStr("job.id", "job-12345")
	lr.Attributes().PutStr("job.type", "email-batch")
	lr.Attributes().PutInt("batch_size", 1000)

	return ld
}

func newRecord(sl plog.ScopeLogs, second int, sev plog.SeverityNumber, sevText, body, event string) plog.LogRecord {
	lr := sl.LogRecords().AppendEmpty()
	ts := BaseTimestamp + pcommon.Timestamp(second)*1_000_000_000
	lr.SetTimestamp(ts)
	lr.SetObservedTimestamp(ts)
	lr.SetSeverityNumber(sev)
	lr.SetSeverityText(sevText)
	lr.Body().SetStr(body)
	lr.SetEventName(event)
	return lr
}

// GenerateLogsWithAllValueTypes returns a payload exercising every field of
// the logs data model, including nested and empty values.
func GenerateLogsWithAllValueTypes() plog.Logs {
	ld := plog.NewLogs()
	rl := ld.ResourceLogs().AppendEmpty()
	rl.SetSchemaUrl("https://opentelemetry.io/schemas/1.38.0")
	rl.Resource().Attributes().PutStr("service.name", "checkout")
	rl.Resource().Attributes().PutEmptyBytes("host.id").FromRaw([]byte{0xca, 0xfe})
	rl.Resource().SetDroppedAttributesCount(2)

	sl := rl.ScopeLogs().AppendEmpty()
	sl.SetSchemaUrl("https://opentelemetry.io/schemas/1.37.0")
	sl.Scope().SetName("checkout/payments")
	sl.Scope().SetVersion("v0.4.2")
	sl.Scope().Attributes().PutStr("library.language", "go")
	sl.Scope().SetDroppedAttributesCount(1)

	lr := sl.LogRecords().AppendEmpty()
	lr.SetTimestamp(BaseTimestamp)
	lr.SetObservedTimestamp(BaseTimestamp + 5)
	lr.SetSeverityNumber(plog.SeverityNumberWarn2)
	lr.SetSeverityText("WARN2")
	lr.SetEventName("payment.retry")
	lr.SetTraceID(pcommon.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	lr.SetSpanID(pcommon.SpanID{1, 2, 3, 4, 5, 6, 7, 8})
	lr.SetFlags(plog.DefaultLogRecordFlags.WithIsSampled(true))
	lr.SetDroppedAttributesCount(3)
	body := lr.Body().SetEmptyMap()
	body.PutStr("message", "card declined")
	body.PutInt("attempt", -3)
	nested := body.PutEmptySlice("codes")
	nested.AppendEmpty().SetInt(51)
	nested.AppendEmpty().SetStr("insufficient_funds")
	inner := nested.AppendEmpty().SetEmptySlice()
	inner.AppendEmpty().SetDouble(0.5)
	inner.AppendEmpty().SetBool(true)

	attrs := lr.Attributes()
	attrs.PutStr("str", "value")
	attrs.PutBool("bool", true)
	attrs.PutInt("int", -42)
	attrs.PutDouble("double", 3.25)
	attrs.PutEmptyBytes("bytes").FromRaw([]byte{0, 1, 2, 0xff})
	attrs.PutEmpty("empty")
	attrs.PutEmptyMap("empty_map")
	attrs.PutEmptySlice("empty_slice")
	kvs := attrs.PutEmptyMap("map")
	kvs.PutStr("k", "v")
	kvs.PutEmptyMap("inner").PutInt("depth", 2)

	// A record that only carries an observed time.
	observed := sl.LogRecords().AppendEmpty()
	observed.SetObservedTimestamp(BaseTimestamp + 10)
	observed.Body().SetEmptyBytes().FromRaw([]byte("raw"))

	// A record without any field set.
	sl.LogRecords().AppendEmpty()

	// A resource without scopes and a scope without records.
	ld.ResourceLogs().AppendEmpty().ScopeLogs().AppendEmpty()
	ld.ResourceLogs().AppendEmpty()
	return ld
}

// Marshal encodes ld with the pdata protobuf marshaler.
func Marshal(tb testing.TB, ld plog.Logs) []byte {
	tb.Helper()
	buf, err := (&plog.ProtoMarshaler{}).MarshalLogs(ld)
	require.NoError(tb, err)
	return buf
}
