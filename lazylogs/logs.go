// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package lazylogs provides zero-copy views over OTLP logs encoded in the
// protobuf wire format.
//
// Views hold nothing but the byte range of their message and decode fields on
// every access, except LogRecord which scans its fields once and serves later
// lookups from a cache. Strings and byte slices returned by views share memory
// with the encoded buffer, which must not be modified while any of them is in
// use.
//
// The concrete Iterator based API does not allocate, apart from one LogRecord
// per record visited. The logsview interface methods box views and may
// allocate.
package lazylogs // import "go.opentelemetry.io/collector/logsview/lazylogs"

import (
	"iter"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var (
	_ logsview.LogsView         = Logs{}
	_ logsview.ResourceLogsView = ResourceLogs{}
	_ logsview.ResourceView     = Resource{}
)

// Logs is a view over an encoded LogsData message.
type Logs struct {
	buf []byte
}

// New returns a view over buf. Nothing is decoded until accessed.
func New(buf []byte) Logs {
	return Logs{buf: buf}
}

// ResourceLogsIter returns an iterator over the resource groups.
func (l Logs) ResourceLogsIter() Iterator[ResourceLogs] {
	return newIterator(l.buf, wire.LogsDataResourceLogs, newResourceLogs)
}

// ResourceLogs iterates the resource groups in wire order.
func (l Logs) ResourceLogs() iter.Seq[logsview.ResourceLogsView] {
	return func(yield func(logsview.ResourceLogsView) bool) {
		it := l.ResourceLogsIter()
		for rl, ok := it.Next(); ok; rl, ok = it.Next() {
			if !yield(rl) {
				return
			}
		}
	}
}

// ResourceLogs is a view over an encoded ResourceLogs message.
type ResourceLogs struct {
	buf []byte
}

func newResourceLogs(buf []byte) (ResourceLogs, bool) {
	return ResourceLogs{buf: buf}, true
}

// RawResource returns the encoded Resource message.
func (rl ResourceLogs) RawResource() ([]byte, bool) {
	return wire.FindBytes(rl.buf, wire.ResourceLogsResource)
}

// ResourceView returns the resource. A missing resource is an empty view.
func (rl ResourceLogs) ResourceView() Resource {
	b, _ := rl.RawResource()
	return Resource{buf: b}
}

// Resource returns the resource. A missing resource is empty.
func (rl ResourceLogs) Resource() logsview.ResourceView {
	return rl.ResourceView()
}

// ScopeLogsIter returns an iterator over the scope groups.
func (rl ResourceLogs) ScopeLogsIter() Iterator[ScopeLogs] {
	return newIterator(rl.buf, wire.ResourceLogsScopeLogs, newScopeLogs)
}

// ScopeLogs iterates the scope groups of the resource.
func (rl ResourceLogs) ScopeLogs() iter.Seq[logsview.ScopeLogsView] {
	return func(yield func(logsview.ScopeLogsView) bool) {
		it := rl.ScopeLogsIter()
		for sl, ok := it.Next(); ok; sl, ok = it.Next() {
			if !yield(sl) {
				return
			}
		}
	}
}

// SchemaURL returns the schema URL of the resource group.
func (rl ResourceLogs) SchemaURL() string {
	s, _ := wire.FindString(rl.buf, wire.ResourceLogsSchemaURL)
	return s
}

// Resource is a view over an encoded Resource message.
type Resource struct {
	buf []byte
}

// AttributesIter returns an iterator over the resource attributes.
func (r Resource) AttributesIter() Iterator[KeyValue] {
	return newIterator(r.buf, wire.ResourceAttributes, newKeyValue)
}

// Attributes iterates the resource attributes in wire order.
func (r Resource) Attributes() iter.Seq[logsview.AttributeView] {
	return attributesSeq(r.AttributesIter())
}

// DroppedAttributesCount returns the number of resource attributes discarded at the source.
func (r Resource) DroppedAttributesCount() uint32 {
	v, _ := wire.FindVarint(r.buf, wire.ResourceDroppedAttributesCount)
	return uint32(v) //nolint:gosec // G115
}

func attributesSeq(it Iterator[KeyValue]) iter.Seq[logsview.AttributeView] {
	return func(yield func(logsview.AttributeView) bool) {
		cur := it
		for kv, ok := cur.Next(); ok; kv, ok = cur.Next() {
			if !yield(kv) {
				return
			}
		}
	}
}
