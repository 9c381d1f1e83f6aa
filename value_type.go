// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logsview // import "go.opentelemetry.io/collector/logsview"

// ValueType specifies the type of an AnyValueView.
type ValueType int32

const (
	// ValueTypeEmpty is reported for values with no populated branch.
	ValueTypeEmpty ValueType = iota
	ValueTypeStr
	ValueTypeBool
	ValueTypeInt
	ValueTypeDouble
	ValueTypeArray
	ValueTypeKeyValueList
	ValueTypeBytes
)

// String returns the string representation of the ValueType.
func (avt ValueType) String() string {
	switch avt {
	case ValueTypeEmpty:
		return "Empty"
	case ValueTypeStr:
		return "Str"
	case ValueTypeBool:
		return "Bool"
	case ValueTypeInt:
		return "Int"
	case ValueTypeDouble:
		return "Double"
	case ValueTypeArray:
		return "Array"
	case ValueTypeKeyValueList:
		return "KeyValueList"
	case ValueTypeBytes:
		return "Bytes"
	}
	return ""
}
