// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package eagerlogs // import "go.opentelemetry.io/collector/logsview/eagerlogs"

import (
	"iter"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var (
	_ logsview.ResourceLogsView = (*ResourceLogs)(nil)
	_ logsview.ResourceView     = (*Resource)(nil)
)

// ResourceLogs is a collection of scope groups from one Resource.
type ResourceLogs struct {
	resource  Resource
	scopeLogs slots[ScopeLogs]
	schemaURL string
}

func (rl *ResourceLogs) parse(buf []byte) bool {
	rl.resource.reset()
	if b, ok := wire.FindBytes(buf, wire.ResourceLogsResource); ok {
		rl.resource.parse(b)
	}

	rl.scopeLogs.reset()
	it := wire.NewIterator(buf, wire.ResourceLogsScopeLogs)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		b, ok := f.Bytes(buf)
		if !ok {
			continue
		}
		if rl.scopeLogs.next().parse(b) {
			rl.scopeLogs.commit()
		}
	}

	rl.schemaURL = findString(buf, wire.ResourceLogsSchemaURL)
	return true
}

// Resource returns the resource of the group.
func (rl *ResourceLogs) Resource() logsview.ResourceView {
	return &rl.resource
}

// ResourceNode returns the resource node of the group.
func (rl *ResourceLogs) ResourceNode() *Resource {
	return &rl.resource
}

// ScopeLogsLen returns the number of decoded scope groups.
func (rl *ResourceLogs) ScopeLogsLen() int {
	return rl.scopeLogs.len()
}

// ScopeLogsAt returns the scope group at index i.
func (rl *ResourceLogs) ScopeLogsAt(i int) *ScopeLogs {
	return rl.scopeLogs.at(i)
}

// ScopeLogs iterates the scope groups of the resource.
func (rl *ResourceLogs) ScopeLogs() iter.Seq[logsview.ScopeLogsView] {
	return func(yield func(logsview.ScopeLogsView) bool) {
		for i := 0; i < rl.scopeLogs.len(); i++ {
			if !yield(rl.scopeLogs.at(i)) {
				return
			}
		}
	}
}

// SchemaURL returns the schema URL of the resource group.
func (rl *ResourceLogs) SchemaURL() string {
	return rl.schemaURL
}

// Resource holds the attributes of the entity producing the logs.
type Resource struct {
	attributes slots[KeyValue]
	dropped    uint32
}

func (r *Resource) reset() {
	r.attributes.reset()
	r.dropped = 0
}

func (r *Resource) parse(buf []byte) bool {
	parseAttributes(buf, wire.ResourceAttributes, &r.attributes)
	r.dropped = findUint32(buf, wire.ResourceDroppedAttributesCount)
	return true
}

// AttributesLen returns the number of decoded attributes.
func (r *Resource) AttributesLen() int {
	return r.attributes.len()
}

// AttributeAt returns the attribute at index i.
func (r *Resource) AttributeAt(i int) *KeyValue {
	return r.attributes.at(i)
}

// Attributes iterates the resource attributes in wire order.
func (r *Resource) Attributes() iter.Seq[logsview.AttributeView] {
	return attributesSeq(&r.attributes)
}

// DroppedAttributesCount returns the number of resource attributes discarded at the source.
func (r *Resource) DroppedAttributesCount() uint32 {
	return r.dropped
}

// ServiceName returns the string value of the service.name attribute, or
// logsview.UnknownServiceName.
func (r *Resource) ServiceName() string {
	return logsview.ServiceName(r)
}
