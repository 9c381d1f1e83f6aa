// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package eagerlogs decodes OTLP logs into a reusable tree of nodes.
//
// A Logs tree is meant to be parsed into repeatedly: every Parse call resets
// the logical length of each child list and repopulates the nodes already
// allocated by earlier calls, so a steady stream of similar payloads decodes
// without allocating. Strings and byte slices exposed by the tree share memory
// with the parsed buffer, which must not be modified until the next Parse.
//
// A Logs tree must not be used by multiple goroutines at the same time.
package eagerlogs // import "go.opentelemetry.io/collector/logsview/eagerlogs"

import (
	"iter"
	"sync"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/internal/wire"
)

var _ logsview.LogsView = (*Logs)(nil)

// Logs is the root of a decoded LogsData message.
type Logs struct {
	resourceLogs slots[ResourceLogs]
}

// NewLogs returns an empty tree.
func NewLogs() *Logs {
	return &Logs{}
}

var logsPool = sync.Pool{
	New: func() any {
		return NewLogs()
	},
}

// GetLogs returns a tree from a process wide pool. The tree may hold
// capacity from earlier payloads but exposes nothing until parsed into.
func GetLogs() *Logs {
	ld := logsPool.Get().(*Logs)
	ld.Reset()
	return ld
}

// PutLogs returns ld to the pool. ld and every node obtained from it must not
// be used afterwards.
func PutLogs(ld *Logs) {
	ld.Reset()
	logsPool.Put(ld)
}

// Reset hides every resource group while keeping the allocated nodes.
func (ld *Logs) Reset() {
	ld.resourceLogs.reset()
}

// Parse decodes buf into the tree, replacing anything decoded before. It
// reports whether at least one resource group was decoded. buf must remain
// unmodified while the tree is in use.
func (ld *Logs) Parse(buf []byte) bool {
	ld.resourceLogs.reset()
	it := wire.NewIterator(buf, wire.LogsDataResourceLogs)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		b, ok := f.Bytes(buf)
		if !ok {
			continue
		}
		if ld.resourceLogs.next().parse(b) {
			ld.resourceLogs.commit()
		}
	}
	return ld.resourceLogs.len() > 0
}

// ResourceLogsLen returns the number of decoded resource groups.
func (ld *Logs) ResourceLogsLen() int {
	return ld.resourceLogs.len()
}

// ResourceLogsAt returns the resource group at index i.
func (ld *Logs) ResourceLogsAt(i int) *ResourceLogs {
	return ld.resourceLogs.at(i)
}

// ResourceLogs iterates the decoded resource groups.
func (ld *Logs) ResourceLogs() iter.Seq[logsview.ResourceLogsView] {
	return func(yield func(logsview.ResourceLogsView) bool) {
		for i := 0; i < ld.resourceLogs.len(); i++ {
			if !yield(ld.resourceLogs.at(i)) {
				return
			}
		}
	}
}

func parseAttributes(buf []byte, num uint32, dst *slots[KeyValue]) {
	dst.reset()
	parseAppendAttributes(buf, num, dst)
}

// parseAppendAttributes decodes every attribute numbered num after the ones
// already in dst.
func parseAppendAttributes(buf []byte, num uint32, dst *slots[KeyValue]) {
	it := wire.NewIterator(buf, num)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		b, ok := f.Bytes(buf)
		if !ok {
			continue
		}
		if dst.next().parse(b) {
			dst.commit()
		}
	}
}

func attributesSeq(s *slots[KeyValue]) iter.Seq[logsview.AttributeView] {
	return func(yield func(logsview.AttributeView) bool) {
		for i := 0; i < s.len(); i++ {
			if !yield(s.at(i)) {
				return
			}
		}
	}
}

func findUint32(buf []byte, num uint32) uint32 {
	v, _ := wire.FindVarint(buf, num)
	return uint32(v)
}

func findString(buf []byte, num uint32) string {
	s, _ := wire.FindString(buf, num)
	return s
}
