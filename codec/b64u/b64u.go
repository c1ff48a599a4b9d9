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

// Package b64u implements Base64u, the URL-safe variant of padded standard
// Base64 used by signing requests. It maps `+` to `-`, `/` to `_` and `=` to
// `.`, so encoded data never needs escaping in a URI.
package b64u

import (
	"encoding/base64"
	"strings"

	"github.com/optakt/steem-uri/signing/failure"
)

var (
	// The strict encoding rejects non-zero padding bits, which keeps the
	// mapping between encoded strings and byte strings one-to-one.
	encoding = base64.StdEncoding.Strict()

	toURL   = strings.NewReplacer("+", "-", "/", "_", "=", ".")
	fromURL = strings.NewReplacer("-", "+", "_", "/", ".", "=")
)

// Encode returns the Base64u encoding of the given data.
func Encode(data []byte) string {
	return toURL.Replace(encoding.EncodeToString(data))
}

// EncodeString returns the Base64u encoding of the given string.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// Decode returns the data represented by the given Base64u string.
func Decode(s string) ([]byte, error) {

	// The standard decoder skips line breaks, which would make multiple
	// inputs decode to the same data.
	if strings.ContainsAny(s, "\r\n") {
		return nil, failure.MalformedEncoding{
			Description: failure.NewDescription("line breaks are not allowed"),
			Input:       s,
		}
	}

	// Standard Base64 characters are outside of the Base64u alphabet.
	if strings.ContainsAny(s, "+/=") {
		return nil, failure.MalformedEncoding{
			Description: failure.NewDescription("standard base64 characters are not allowed"),
			Input:       s,
		}
	}

	data, err := encoding.DecodeString(fromURL.Replace(s))
	if err != nil {
		return nil, failure.MalformedEncoding{
			Description: failure.NewDescription("could not decode input", failure.WithErr(err)),
			Input:       s,
		}
	}

	return data, nil
}

// DecodeString returns the string represented by the given Base64u string.
func DecodeString(s string) (string, error) {
	data, err := Decode(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
