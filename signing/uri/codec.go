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

package uri

import (
	"github.com/optakt/steem-uri/models/steem"
)

// Protocol elements of a signing request URI.
const (
	Protocol = "steem"
	Action   = "sign"

	KindTransaction = "tx"
	KindOperation   = "op"
	KindOperations  = "ops"
)

// Short query keys, to keep URIs small enough for QR codes.
const (
	paramNoBroadcast = "nb"
	paramSigner      = "s"
	paramCallback    = "cb"
)

// PayloadCodec converts JSON values to and from the payload segment of a URI.
type PayloadCodec interface {
	Marshal(value steem.Value) (string, error)
	Unmarshal(payload string) (steem.Value, error)
}

// Codec builds and parses `steem://sign/...` signing request URIs.
type Codec struct {
	payload PayloadCodec
}

// NewCodec creates a new signing request codec using the given payload codec.
func NewCodec(payload PayloadCodec) *Codec {

	c := Codec{
		payload: payload,
	}

	return &c
}
