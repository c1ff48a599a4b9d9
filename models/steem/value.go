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

// Value is a JSON-compatible value. It is a closed set of variants: String,
// Number, Bool, Null, Array and Object. Code that walks values switches on
// these concrete types.
type Value interface {
	value()
}

// String is a JSON string.
type String string

// Number is a JSON number, kept as its exact decimal text so that integers
// beyond 53 bits survive a decode and encode cycle unchanged.
type Number string

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null value.
type Null struct{}

// Array is an ordered JSON array.
type Array []Value

// Object is a JSON object which keeps its members in document order.
type Object []Member

// Member is a single key and value of an Object.
type Member struct {
	Key   string
	Value Value
}

func (String) value() {}
func (Number) value() {}
func (Bool) value()   {}
func (Null) value()   {}
func (Array) value()  {}
func (Object) value() {}

// Get returns the value stored under the given key.
func (o Object) Get(key string) (Value, bool) {
	for _, member := range o {
		if member.Key == key {
			return member.Value, true
		}
	}
	return nil, false
}

// With returns a copy of the object where the given key holds the given
// value. An existing key keeps its position; a new key is appended.
func (o Object) With(key string, val Value) Object {
	out := make(Object, len(o), len(o)+1)
	copy(out, o)
	for i, member := range out {
		if member.Key == key {
			out[i].Value = val
			return out
		}
	}
	return append(out, Member{Key: key, Value: val})
}
