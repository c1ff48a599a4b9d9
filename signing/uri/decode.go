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
	"net/url"
	"strings"

	"github.com/optakt/steem-uri/codec/b64u"
	"github.com/optakt/steem-uri/codec/payload"
	"github.com/optakt/steem-uri/models/steem"
	"github.com/optakt/steem-uri/signing/failure"
)

// Decode parses a signing request URI into the unresolved transaction it
// describes and its parameters. Requests for operations are wrapped into a
// transaction with placeholders for the reference block and expiration.
func (c *Codec) Decode(raw string) (steem.Transaction, steem.Parameters, error) {

	u, err := url.Parse(raw)
	if err != nil {
		return steem.Transaction{}, steem.Parameters{}, failure.MalformedURI{
			Description: failure.NewDescription(uriUnparseable, failure.WithErr(err)),
			URI:         raw,
		}
	}

	if u.Scheme != Protocol {
		return steem.Transaction{}, steem.Parameters{}, failure.InvalidProtocol{
			Description: failure.NewDescription(protocolInvalid,
				failure.WithString("want_protocol", Protocol),
			),
			Protocol: u.Scheme,
		}
	}

	if u.Host != Action {
		return steem.Transaction{}, steem.Parameters{}, failure.InvalidAction{
			Description: failure.NewDescription(actionInvalid,
				failure.WithString("want_action", Action),
			),
			Action: u.Host,
		}
	}

	segments := strings.Split(strings.TrimPrefix(u.EscapedPath(), "/"), "/")
	kind := segments[0]
	args := segments[1:]

	var tx steem.Transaction
	switch kind {
	case KindTransaction, KindOperation, KindOperations:
		if len(args) != 1 || args[0] == "" {
			return steem.Transaction{}, steem.Parameters{}, failure.MalformedURI{
				Description: failure.NewDescription(pathInvalid,
					failure.WithString("kind", kind),
					failure.WithInt("segments", len(segments)),
				),
				URI: raw,
			}
		}
		tx, err = c.decodePayload(kind, args[0])
		if err != nil {
			return steem.Transaction{}, steem.Parameters{}, err
		}

	default:
		alias, ok := aliases[kind]
		if !ok {
			return steem.Transaction{}, steem.Parameters{}, failure.InvalidSigningAction{
				Description: failure.NewDescription(kindUnknown,
					failure.WithStrings("known_kinds", Kinds()...),
				),
				Kind: kind,
			}
		}
		op, err := alias.expand(args)
		if err != nil {
			return steem.Transaction{}, steem.Parameters{}, err
		}
		tx = steem.NewTransaction(op)
	}

	params, err := DecodeParameters(u.RawQuery)
	if err != nil {
		return steem.Transaction{}, steem.Parameters{}, err
	}

	return tx, params, nil
}

// DecodeParameters parses the parameters from the query string of a signing
// request. The presence of `nb` alone enables no-broadcast mode, whatever
// its value.
func DecodeParameters(rawQuery string) (steem.Parameters, error) {

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return steem.Parameters{}, failure.MalformedURI{
			Description: failure.NewDescription(queryUnparseable, failure.WithErr(err)),
			URI:         rawQuery,
		}
	}

	var params steem.Parameters
	_, params.NoBroadcast = query[paramNoBroadcast]
	params.Signer = query.Get(paramSigner)

	encoded := query.Get(paramCallback)
	if encoded != "" {
		params.Callback, err = b64u.DecodeString(encoded)
		if err != nil {
			return steem.Parameters{}, failure.MalformedEncoding{
				Description: failure.NewDescription(callbackEncoding, failure.WithErr(err)),
				Input:       encoded,
			}
		}
	}

	return params, nil
}

func (c *Codec) decodePayload(kind string, segment string) (steem.Transaction, error) {

	// Base64u only uses unreserved characters, but some producers escape
	// them regardless.
	encoded, err := url.PathUnescape(segment)
	if err != nil {
		encoded = segment
	}

	value, err := c.payload.Unmarshal(encoded)
	if err != nil {
		return steem.Transaction{}, err
	}

	switch kind {

	case KindOperation:
		op, err := steem.OperationFromValue(value)
		if err != nil {
			return steem.Transaction{}, invalidPayload(opInvalid, err)
		}
		return steem.NewTransaction(op), nil

	case KindOperations:
		ops, err := steem.OperationsFromValue(value)
		if err != nil {
			return steem.Transaction{}, invalidPayload(opsInvalid, err)
		}
		return steem.NewTransaction(ops...), nil

	default:
		tx, err := steem.TransactionFromValue(value)
		if err != nil {
			return steem.Transaction{}, invalidPayload(txInvalid, err)
		}
		return tx, nil
	}
}

func invalidPayload(text string, err error) failure.InvalidPayload {
	return failure.InvalidPayload{
		Description: failure.NewDescription(text, failure.WithErr(err)),
		Encoding:    payload.EncodingJSON,
		Cause:       err,
	}
}
