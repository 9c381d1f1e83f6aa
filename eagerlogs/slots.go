// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package eagerlogs // import "go.opentelemetry.io/collector/logsview/eagerlogs"

// slots is a reusable list of nodes with a logical length. Nodes past the
// logical length keep their allocations for the next parse but are never
// exposed.
type slots[T any] struct {
	nodes []T
	n     int
}

func (s *slots[T]) reset() {
	s.n = 0
}

// next returns the node at the logical length, allocating one when the
// retained capacity is exhausted. The node only becomes visible after commit.
func (s *slots[T]) next() *T {
	if s.n == len(s.nodes) {
		var zero T
		s.nodes = append(s.nodes, zero)
	}
	return &s.nodes[s.n]
}

func (s *slots[T]) commit() {
	s.n++
}

func (s *slots[T]) len() int {
	return s.n
}

// at panics when i is outside [0, len()), like an out of range slice index.
func (s *slots[T]) at(i int) *T {
	if i < 0 || i >= s.n {
		panic("eagerlogs: index out of range")
	}
	return &s.nodes[i]
}

// capacity returns the number of retained nodes, visible or not.
func (s *slots[T]) capacity() int {
	return len(s.nodes)
}
