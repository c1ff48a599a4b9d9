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
	"sort"
	"strconv"

	"github.com/optakt/steem-uri/models/steem"
	"github.com/optakt/steem-uri/signing/failure"
)

// Alias is a shorthand signing action for a common operation. Instead of a
// Base64u payload, its path segments carry the operation arguments directly,
// e.g. `steem://sign/transfer/alice/1.000%20STEEM`.
type Alias struct {
	Name      string
	Arguments []string // argument names, in path order
	Optional  int      // number of trailing arguments that can be omitted

	build func(args []string) (steem.Operation, error)
}

var aliases = map[string]Alias{
	"transfer": {
		Name:      "transfer",
		Arguments: []string{"to", "amount", "memo"},
		Optional:  1,
		build: func(args []string) (steem.Operation, error) {
			memo := ""
			if len(args) > 2 {
				memo = args[2]
			}
			op := steem.Operation{
				Name: "transfer",
				Params: steem.Object{
					{Key: "from", Value: steem.String(steem.PlaceholderSigner)},
					{Key: "to", Value: steem.String(args[0])},
					{Key: "amount", Value: steem.String(args[1])},
					{Key: "memo", Value: steem.String(memo)},
				},
			}
			return op, nil
		},
	},
	"follow": {
		Name:      "follow",
		Arguments: []string{"follower", "following"},
		build: func(args []string) (steem.Operation, error) {
			// The follow plugin payload is a JSON string, so the follower can not
			// be left to a placeholder and has to be part of the request.
			payload := steem.Array{
				steem.String("follow"),
				steem.Object{
					{Key: "follower", Value: steem.String(args[0])},
					{Key: "following", Value: steem.String(args[1])},
					{Key: "what", Value: steem.Array{steem.String("blog")}},
				},
			}
			data, err := steem.Marshal(payload)
			if err != nil {
				return steem.Operation{}, fmt.Errorf("could not encode follow payload: %w", err)
			}
			op := steem.Operation{
				Name: "custom_json",
				Params: steem.Object{
					{Key: "required_auths", Value: steem.Array{}},
					{Key: "required_posting_auths", Value: steem.Array{steem.String(args[0])}},
					{Key: "id", Value: steem.String("follow")},
					{Key: "json", Value: steem.String(data)},
				},
			}
			return op, nil
		},
	},
	"vote": {
		Name:      "vote",
		Arguments: []string{"author", "permlink", "weight"},
		build: func(args []string) (steem.Operation, error) {
			weight, err := strconv.ParseInt(args[2], 10, 16)
			if err != nil {
				return steem.Operation{}, fmt.Errorf("invalid vote weight: %w", err)
			}
			if weight < -10000 || weight > 10000 {
				return steem.Operation{}, fmt.Errorf("vote weight out of range (%d)", weight)
			}
			op := steem.Operation{
				Name: "vote",
				Params: steem.Object{
					{Key: "voter", Value: steem.String(steem.PlaceholderSigner)},
					{Key: "author", Value: steem.String(args[0])},
					{Key: "permlink", Value: steem.String(args[1])},
					{Key: "weight", Value: steem.Number(strconv.FormatInt(weight, 10))},
				},
			}
			return op, nil
		},
	},
	"witness-vote": {
		Name:      "witness-vote",
		Arguments: []string{"witness", "approve"},
		Optional:  1,
		build: func(args []string) (steem.Operation, error) {
			approve := true
			if len(args) > 1 {
				var err error
				approve, err = strconv.ParseBool(args[1])
				if err != nil {
					return steem.Operation{}, fmt.Errorf("invalid approval flag: %w", err)
				}
			}
			op := steem.Operation{
				Name: "account_witness_vote",
				Params: steem.Object{
					{Key: "account", Value: steem.String(steem.PlaceholderSigner)},
					{Key: "witness", Value: steem.String(args[0])},
					{Key: "approve", Value: steem.Bool(approve)},
				},
			}
			return op, nil
		},
	},
	"delegate": {
		Name:      "delegate",
		Arguments: []string{"delegatee", "vesting_shares"},
		build: func(args []string) (steem.Operation, error) {
			op := steem.Operation{
				Name: "delegate_vesting_shares",
				Params: steem.Object{
					{Key: "delegator", Value: steem.String(steem.PlaceholderSigner)},
					{Key: "delegatee", Value: steem.String(args[0])},
					{Key: "vesting_shares", Value: steem.String(args[1])},
				},
			}
			return op, nil
		},
	},
}

// Kinds returns the names of all signing actions: the payload kinds followed
// by the aliases in alphabetical order.
func Kinds() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{KindTransaction, KindOperation, KindOperations}, names...)
}

// LookupAlias returns the alias with the given name.
func LookupAlias(name string) (Alias, bool) {
	alias, ok := aliases[name]
	return alias, ok
}

// Expand creates the operation described by the alias with the given
// unescaped arguments.
func (a Alias) Expand(args []string) (steem.Operation, error) {

	required := len(a.Arguments) - a.Optional
	if len(args) < required || len(args) > len(a.Arguments) {
		return steem.Operation{}, failure.InvalidAliasArguments{
			Description: failure.NewDescription(aliasArgCount,
				failure.WithInt("min", required),
				failure.WithInt("max", len(a.Arguments)),
				failure.WithStrings("names", a.Arguments...),
			),
			Alias:     a.Name,
			Arguments: args,
		}
	}

	op, err := a.build(args)
	if err != nil {
		return steem.Operation{}, failure.InvalidAliasArguments{
			Description: failure.NewDescription(aliasArgInvalid, failure.WithErr(err)),
			Alias:       a.Name,
			Arguments:   args,
		}
	}

	return op, nil
}

// expand unescapes the given path segments and expands the alias.
func (a Alias) expand(segments []string) (steem.Operation, error) {

	args := make([]string, 0, len(segments))
	for _, segment := range segments {
		arg, err := url.PathUnescape(segment)
		if err != nil {
			return steem.Operation{}, failure.InvalidAliasArguments{
				Description: failure.NewDescription(aliasArgEscaped,
					failure.WithString("segment", segment),
					failure.WithErr(err),
				),
				Alias:     a.Name,
				Arguments: segments,
			}
		}
		args = append(args, arg)
	}

	return a.Expand(args)
}

// EncodeAlias creates a signing request for the operation alias with the
// given name and arguments.
func (c *Codec) EncodeAlias(name string, args []string, params steem.Parameters) (string, error) {

	alias, ok := aliases[name]
	if !ok {
		return "", failure.InvalidSigningAction{
			Description: failure.NewDescription(kindUnknown,
				failure.WithStrings("known_kinds", Kinds()...),
			),
			Kind: name,
		}
	}

	// Validate the arguments before producing a request nobody can decode.
	_, err := alias.Expand(args)
	if err != nil {
		return "", err
	}

	segments := make([]string, 0, len(args)+1)
	segments = append(segments, name)
	for _, arg := range args {
		segments = append(segments, url.PathEscape(arg))
	}

	return build(segments, params), nil
}
