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
	"fmt"
	"net/url"
	"strings"

	"github.com/optakt/steem-uri/codec/b64u"
	"github.com/optakt/steem-uri/models/steem"
)

// EncodeTx creates a signing request for a full transaction.
func (c *Codec) EncodeTx(tx steem.Transaction, params steem.Parameters) (string, error) {
	return c.encode(KindTransaction, tx.Value(), params)
}

// EncodeOp creates a signing request for a single operation.
func (c *Codec) EncodeOp(op steem.Operation, params steem.Parameters) (string, error) {
	return c.encode(KindOperation, op.Value(), params)
}

// EncodeOps creates a signing request for a list of operations.
func (c *Codec) EncodeOps(ops []steem.Operation, params steem.Parameters) (string, error) {
	return c.encode(KindOperations, steem.OperationsValue(ops), params)
}

func (c *Codec) encode(kind string, value steem.Value, params steem.Parameters) (string, error) {

	payload, err := c.payload.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("could not encode payload: %w", err)
	}

	return build([]string{kind, payload}, params), nil
}

// EncodeParameters creates the query string for the given parameters. Absent
// parameters are left out entirely, and keys are always written in the same
// order: `nb`, `s`, `cb`.
func EncodeParameters(params steem.Parameters) string {

	var parts []string
	if params.NoBroadcast {
		parts = append(parts, paramNoBroadcast+"=")
	}
	if params.Signer != "" {
		parts = append(parts, paramSigner+"="+url.QueryEscape(params.Signer))
	}
	if params.Callback != "" {
		parts = append(parts, paramCallback+"="+b64u.EncodeString(params.Callback))
	}

	return strings.Join(parts, "&")
}

func build(segments []string, params steem.Parameters) string {

	var sb strings.Builder
	sb.WriteString(Protocol)
	sb.WriteString("://")
	sb.WriteString(Action)
	for _, segment := range segments {
		sb.WriteByte('/')
		sb.WriteString(segment)
	}

	query := EncodeParameters(params)
	if query != "" {
		sb.WriteByte('?')
		sb.WriteString(query)
	}

	return sb.String()
}
