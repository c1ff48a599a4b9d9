// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package steem

import (
	"fmt"
)

// Operation is a single named blockchain operation, such as a transfer or a
// vote. On the wire it is the two-element array `["name", {...}]`.
type Operation struct {
	Name   string
	Params Object
}

// Value returns the wire representation of the operation.
func (o Operation) Value() Value {
	params := o.Params
	if params == nil {
		params = Object{}
	}
	return Array{String(o.Name), params}
}

// OperationFromValue converts a decoded value into an operation.
func OperationFromValue(v Value) (Operation, error) {

	arr, ok := v.(Array)
	if !ok {
		return Operation{}, fmt.Errorf("operation is not an array (%T)", v)
	}
	if len(arr) != 2 {
		return Operation{}, fmt.Errorf("operation has %d elements, want 2", len(arr))
	}

	name, ok := arr[0].(String)
	if !ok || name == "" {
		return Operation{}, fmt.Errorf("operation name is not a non-empty string")
	}
	params, ok := arr[1].(Object)
	if !ok {
		return Operation{}, fmt.Errorf("operation parameters are not an object (%T)", arr[1])
	}

	op := Operation{
		Name:   string(name),
		Params: params,
	}

	return op, nil
}

// OperationsFromValue converts a decoded array into a list of operations.
func OperationsFromValue(v Value) ([]Operation, error) {

	arr, ok := v.(Array)
	if !ok {
		return nil, fmt.Errorf("operations are not an array (%T)", v)
	}

	ops := make([]Operation, 0, len(arr))
	for i, elem := range arr {
		op, err := OperationFromValue(elem)
		if err != nil {
			return nil, fmt.Errorf("invalid operation at index %d: %w", i, err)
		}
		ops = append(ops, op)
	}

	return ops, nil
}

// OperationsValue returns the wire representation of a list of operations.
func OperationsValue(ops []Operation) Array {
	arr := make(Array, 0, len(ops))
	for _, op := range ops {
		arr = append(arr, op.Value())
	}
	return arr
}

// MarshalJSON implements json.Marshaler.
func (o Operation) MarshalJSON() ([]byte, error) {
	return Marshal(o.Value())
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operation) UnmarshalJSON(data []byte) error {
	v, err := Unmarshal(data)
	if err != nil {
		return err
	}
	op, err := OperationFromValue(v)
	if err != nil {
		return err
	}
	*o = op
	return nil
}
