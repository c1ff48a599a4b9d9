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

// Codec builds and parses signing request URIs.
type Codec interface {
	EncodeTx(tx steem.Transaction, params steem.Parameters) (string, error)
	EncodeOp(op steem.Operation, params steem.Parameters) (string, error)
	EncodeOps(ops []steem.Operation, params steem.Parameters) (string, error)
	Decode(raw string) (steem.Transaction, steem.Parameters, error)
}

// Validator validates the structure of API requests.
type Validator interface {
	Request(request interface{}) error
}
