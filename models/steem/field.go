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
	"encoding/json"
)

// Field is a transaction header field of an unresolved transaction. It holds
// either a placeholder token or a concrete value.
type Field struct {
	token string
	value Value
}

// Placeholder returns a field holding the given placeholder token.
func Placeholder(token string) Field {
	return Field{token: token}
}

// Concrete returns a field holding the given concrete value.
func Concrete(v Value) Field {
	return Field{value: v}
}

// FieldFrom classifies a decoded value: strings equal to a known placeholder
// token become placeholders, everything else is concrete.
func FieldFrom(v Value) Field {
	s, ok := v.(String)
	if ok && IsPlaceholder(string(s)) {
		return Placeholder(string(s))
	}
	return Concrete(v)
}

// Placeholder returns the token held by the field, if any.
func (f Field) Placeholder() (string, bool) {
	return f.token, f.token != ""
}

// Value returns the field as a JSON value. Placeholders are represented by
// their token string.
func (f Field) Value() Value {
	if f.token != "" {
		return String(f.token)
	}
	if f.value == nil {
		return Null{}
	}
	return f.value
}

// MarshalJSON implements json.Marshaler.
func (f Field) MarshalJSON() ([]byte, error) {
	return Marshal(f.Value())
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(data []byte) error {
	v, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*f = FieldFrom(v)
	return nil
}

var (
	_ json.Marshaler   = Field{}
	_ json.Unmarshaler = (*Field)(nil)
)
