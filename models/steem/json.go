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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// Marshal writes the given value as compact JSON. Object members are written
// in their stored order and strings are escaped as JSON.stringify escapes
// them, so the output is byte-for-byte what a JavaScript producer would emit
// for the same document.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	err := encode(&buf, v)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a single JSON document into a value.
func Unmarshal(data []byte) (Value, error) {

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decode(dec)
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}

	// Only whitespace may follow the document.
	_, err = dec.Token()
	if err == nil {
		return nil, fmt.Errorf("invalid data after top-level value")
	}
	if !errors.Is(err, io.EOF) {
		return nil, err
	}

	return v, nil
}

func encode(buf *bytes.Buffer, v Value) error {
	switch val := v.(type) {

	case nil, Null:
		buf.WriteString("null")

	case Bool:
		buf.WriteString(strconv.FormatBool(bool(val)))

	case Number:
		if !json.Valid([]byte(val)) || !isNumberStart(string(val)) {
			return fmt.Errorf("invalid number literal %q", string(val))
		}
		buf.WriteString(string(val))

	case String:
		writeString(buf, string(val))

	case Array:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			err := encode(buf, elem)
			if err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case Object:
		buf.WriteByte('{')
		for i, member := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, member.Key)
			buf.WriteByte(':')
			err := encode(buf, member.Value)
			if err != nil {
				return fmt.Errorf("could not encode member %q: %w", member.Key, err)
			}
		}
		buf.WriteByte('}')

	default:
		return fmt.Errorf("unsupported value type %T", v)
	}

	return nil
}

const hex = "0123456789abcdef"

// writeString escapes only quotes, backslashes and control characters, as
// JSON.stringify does. Invalid UTF-8 is replaced with U+FFFD.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		b := s[i]
		if b >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				buf.WriteString(s[start:i])
				buf.WriteString(`\ufffd`)
				start = i + size
			}
			i += size
			continue
		}
		if b >= 0x20 && b != '"' && b != '\\' {
			i++
			continue
		}
		buf.WriteString(s[start:i])
		switch b {
		case '"', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(b)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hex[b>>4])
			buf.WriteByte(hex[b&0xf])
		}
		i++
		start = i
	}
	buf.WriteString(s[start:])
	buf.WriteByte('"')
}

func isNumberStart(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '-' || (c >= '0' && c <= '9')
}

func decode(dec *json.Decoder) (Value, error) {

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {

	case json.Delim:
		switch t {
		case '[':
			arr := Array{}
			for dec.More() {
				elem, err := decode(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, elem)
			}
			_, err = dec.Token()
			if err != nil {
				return nil, err
			}
			return arr, nil

		case '{':
			obj := Object{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("invalid object key %v", keyTok)
				}
				val, err := decode(dec)
				if err != nil {
					return nil, err
				}
				obj = obj.With(key, val)
			}
			_, err = dec.Token()
			if err != nil {
				return nil, err
			}
			return obj, nil
		}

		return nil, fmt.Errorf("unexpected delimiter %v", t)

	case string:
		return String(t), nil

	case json.Number:
		return Number(t), nil

	case bool:
		return Bool(t), nil

	case nil:
		return Null{}, nil
	}

	return nil, fmt.Errorf("unexpected token %v", tok)
}

// MarshalJSON implements json.Marshaler.
func (s String) MarshalJSON() ([]byte, error) { return Marshal(s) }

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) { return Marshal(n) }

// MarshalJSON implements json.Marshaler.
func (b Bool) MarshalJSON() ([]byte, error) { return Marshal(b) }

// MarshalJSON implements json.Marshaler.
func (n Null) MarshalJSON() ([]byte, error) { return Marshal(n) }

// MarshalJSON implements json.Marshaler.
func (a Array) MarshalJSON() ([]byte, error) { return Marshal(a) }

// MarshalJSON implements json.Marshaler.
func (o Object) MarshalJSON() ([]byte, error) { return Marshal(o) }

// UnmarshalJSON implements json.Unmarshaler.
func (a *Array) UnmarshalJSON(data []byte) error {
	v, err := Unmarshal(data)
	if err != nil {
		return err
	}
	arr, ok := v.(Array)
	if !ok {
		return fmt.Errorf("expected array, got %T", v)
	}
	*a = arr
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := Unmarshal(data)
	if err != nil {
		return err
	}
	obj, ok := v.(Object)
	if !ok {
		return fmt.Errorf("expected object, got %T", v)
	}
	*o = obj
	return nil
}
