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

// EncodeTransactionRequest is the request body for `/encode/tx`.
type EncodeTransactionRequest struct {
	Transaction steem.Transaction `json:"transaction"`
	Params      steem.Parameters  `json:"params"`
}

// EncodeOperationRequest is the request body for `/encode/op`.
type EncodeOperationRequest struct {
	Operation steem.Operation  `json:"operation"`
	Params    steem.Parameters `json:"params"`
}

// EncodeOperationsRequest is the request body for `/encode/ops`.
type EncodeOperationsRequest struct {
	Operations []steem.Operation `json:"operations"`
	Params     steem.Parameters  `json:"params"`
}

// DecodeRequest is the request body for `/decode`.
type DecodeRequest struct {
	URI string `json:"uri"`
}

// ResolveRequest is the request body for `/resolve`. The options carry what
// the signing application knows: the reference block, the expiration and the
// accounts it can sign for.
type ResolveRequest struct {
	URI     string        `json:"uri"`
	Options steem.Options `json:"options"`
}

// CallbackRequest is the request body for `/callback`.
type CallbackRequest struct {
	URL          string             `json:"url"`
	Confirmation steem.Confirmation `json:"confirmation"`
}
