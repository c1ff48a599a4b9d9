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

package payload

import (
	"fmt"

	"github.com/optakt/steem-uri/codec/b64u"
	"github.com/optakt/steem-uri/models/steem"
	"github.com/optakt/steem-uri/signing/failure"
)

// Encoding names used when reporting invalid payloads.
const (
	EncodingBase64u = "base64u"
	EncodingJSON    = "json"
)

// Codec combines compact JSON serialization with Base64u transcoding to
// produce the payload segment of signing requests.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode serializes the value into compact JSON.
func (c *Codec) Encode(value steem.Value) ([]byte, error) {
	return steem.Marshal(value)
}

// Decode parses compact JSON into a value.
func (c *Codec) Decode(data []byte) (steem.Value, error) {
	return steem.Unmarshal(data)
}

// Marshal serializes the value and encodes it as Base64u.
func (c *Codec) Marshal(value steem.Value) (string, error) {
	data, err := c.Encode(value)
	if err != nil {
		return "", fmt.Errorf("could not encode value: %w", err)
	}
	return b64u.Encode(data), nil
}

// Unmarshal decodes a Base64u payload and parses the resulting JSON.
func (c *Codec) Unmarshal(payload string) (steem.Value, error) {

	data, err := b64u.Decode(payload)
	if err != nil {
		return nil, failure.InvalidPayload{
			Description: failure.NewDescription("could not decode payload", failure.WithErr(err)),
			Encoding:    EncodingBase64u,
			Cause:       err,
		}
	}

	value, err := c.Decode(data)
	if err != nil {
		return nil, failure.InvalidPayload{
			Description: failure.NewDescription("could not parse payload", failure.WithErr(err)),
			Encoding:    EncodingJSON,
			Cause:       err,
		}
	}

	return value, nil
}
