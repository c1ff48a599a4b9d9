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

package resolver

import (
	"strconv"

	"github.com/optakt/steem-uri/models/steem"
	"github.com/optakt/steem-uri/signing/failure"
)

const signerUnavailable = "signer is not available"

// Transaction resolves the placeholders of an unresolved transaction, using
// the reference block, expiration and signers provided by the signing
// application. The signer requested by the parameters takes precedence over
// the preferred signer of the options, and must be one of the options'
// signers.
//
// Only string values equal to a placeholder token are replaced; tokens that
// are part of a longer string are left alone, as are unknown tokens.
func Transaction(utx steem.Transaction, params steem.Parameters, options steem.Options) (*steem.Result, error) {

	signer := params.Signer
	if signer == "" {
		signer = options.PreferredSigner
	}

	if !contains(options.Signers, signer) {
		return nil, failure.SignerUnavailable{
			Description: failure.NewDescription(signerUnavailable,
				failure.WithString("requested_signer", params.Signer),
				failure.WithString("preferred_signer", options.PreferredSigner),
			),
			Signer:    signer,
			Available: options.Signers,
		}
	}

	ctx := map[string]steem.Value{
		steem.PlaceholderRefBlockNum:    steem.Number(strconv.FormatUint(uint64(options.RefBlockNum), 10)),
		steem.PlaceholderRefBlockPrefix: steem.Number(strconv.FormatUint(uint64(options.RefBlockPrefix), 10)),
		steem.PlaceholderExpiration:     steem.String(options.Expiration.UTC().Format(steem.TimeFormat)),
		steem.PlaceholderSigner:         steem.String(signer),
	}

	ops := make([]steem.Operation, 0, len(utx.Operations))
	for _, op := range utx.Operations {
		resolved, _ := walk(op.Params, ctx).(steem.Object)
		ops = append(ops, steem.Operation{Name: op.Name, Params: resolved})
	}

	extensions, _ := walk(utx.Extensions, ctx).(steem.Array)
	extra, _ := walk(utx.Extra, ctx).(steem.Object)

	tx := steem.ResolvedTransaction{
		RefBlockNum:    walk(utx.RefBlockNum.Value(), ctx),
		RefBlockPrefix: walk(utx.RefBlockPrefix.Value(), ctx),
		Expiration:     walk(utx.Expiration.Value(), ctx),
		Extensions:     extensions,
		Operations:     ops,
		Extra:          extra,
	}

	res := steem.Result{
		Transaction: tx,
		Signer:      signer,
	}

	return &res, nil
}

// walk returns a copy of the value with every string equal to a key of the
// context replaced by the corresponding context value.
func walk(v steem.Value, ctx map[string]steem.Value) steem.Value {
	switch val := v.(type) {

	case steem.String:
		sub, ok := ctx[string(val)]
		if ok {
			return sub
		}
		return val

	case steem.Array:
		if val == nil {
			return val
		}
		out := make(steem.Array, 0, len(val))
		for _, elem := range val {
			out = append(out, walk(elem, ctx))
		}
		return out

	case steem.Object:
		if val == nil {
			return val
		}
		out := make(steem.Object, 0, len(val))
		for _, member := range val {
			out = append(out, steem.Member{Key: member.Key, Value: walk(member.Value, ctx)})
		}
		return out

	default:
		return v
	}
}

func contains(signers []string, signer string) bool {
	for _, candidate := range signers {
		if candidate == signer {
			return true
		}
	}
	return false
}
