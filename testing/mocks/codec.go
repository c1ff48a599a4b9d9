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

package mocks

import (
	"testing"

	"github.com/optakt/steem-uri/models/steem"
)

type Codec struct {
	EncodeTxFunc  func(tx steem.Transaction, params steem.Parameters) (string, error)
	EncodeOpFunc  func(op steem.Operation, params steem.Parameters) (string, error)
	EncodeOpsFunc func(ops []steem.Operation, params steem.Parameters) (string, error)
	DecodeFunc    func(raw string) (steem.Transaction, steem.Parameters, error)
}

func BaselineCodec(t *testing.T) *Codec {
	t.Helper()

	c := Codec{
		EncodeTxFunc: func(steem.Transaction, steem.Parameters) (string, error) {
			return GenericURI, nil
		},
		EncodeOpFunc: func(steem.Operation, steem.Parameters) (string, error) {
			return GenericURI, nil
		},
		EncodeOpsFunc: func([]steem.Operation, steem.Parameters) (string, error) {
			return GenericURI, nil
		},
		DecodeFunc: func(string) (steem.Transaction, steem.Parameters, error) {
			return GenericTransaction, GenericParameters, nil
		},
	}

	return &c
}

func (c *Codec) EncodeTx(tx steem.Transaction, params steem.Parameters) (string, error) {
	return c.EncodeTxFunc(tx, params)
}

func (c *Codec) EncodeOp(op steem.Operation, params steem.Parameters) (string, error) {
	return c.EncodeOpFunc(op, params)
}

func (c *Codec) EncodeOps(ops []steem.Operation, params steem.Parameters) (string, error) {
	return c.EncodeOpsFunc(ops, params)
}

func (c *Codec) Decode(raw string) (steem.Transaction, steem.Parameters, error) {
	return c.DecodeFunc(raw)
}
