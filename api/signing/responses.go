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

package signing

import (
	"github.com/optakt/steem-uri/models/steem"
)

// URIResponse is the response body of all encoding endpoints.
type URIResponse struct {
	URI string `json:"uri"`
}

// DecodeResponse is the response body for `/decode`.
type DecodeResponse struct {
	Transaction steem.Transaction `json:"transaction"`
	Params      steem.Parameters  `json:"params"`
}

// ResolveResponse is the response body for `/resolve`.
type ResolveResponse struct {
	Transaction steem.ResolvedTransaction `json:"transaction"`
	Signer      string                    `json:"signer"`
	Params      steem.Parameters          `json:"params"`
}

// CallbackResponse is the response body for `/callback`.
type CallbackResponse struct {
	URL string `json:"url"`
}
