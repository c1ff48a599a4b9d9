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

// Confirmation holds what a signing application knows after signing, and
// possibly broadcasting, a transaction. ID, Block and Index are only
// available when the transaction was broadcast.
type Confirmation struct {
	Signature string  `json:"sig"`
	ID        string  `json:"id,omitempty"`
	Block     *uint64 `json:"block,omitempty"`
	Index     *uint64 `json:"txn,omitempty"`
}
