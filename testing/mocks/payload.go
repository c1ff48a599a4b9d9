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

type PayloadCodec struct {
	MarshalFunc   func(value steem.Value) (string, error)
	UnmarshalFunc func(payload string) (steem.Value, error)
}

func BaselinePayloadCodec(t *testing.T) *PayloadCodec {
	t.Helper()

	p := PayloadCodec{
		MarshalFunc: func(steem.Value) (string, error) {
			return "e30.", nil
		},
		UnmarshalFunc: func(string) (steem.Value, error) {
			return GenericOperation.Value(), nil
		},
	}

	return &p
}

func (p *PayloadCodec) Marshal(value steem.Value) (string, error) {
	return p.MarshalFunc(value)
}

func (p *PayloadCodec) Unmarshal(payload string) (steem.Value, error) {
	return p.UnmarshalFunc(payload)
}
