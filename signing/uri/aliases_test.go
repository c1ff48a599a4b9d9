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

package uri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/steem-uri/codec/payload"
	"github.com/optakt/steem-uri/models/steem"
	"github.com/optakt/steem-uri/signing/failure"
	"github.com/optakt/steem-uri/signing/uri"
)

func TestKinds(t *testing.T) {
	want := []string{"tx", "op", "ops", "delegate", "follow", "transfer", "vote", "witness-vote"}

	assert.Equal(t, want, uri.Kinds())
}

func TestCodec_EncodeAlias(t *testing.T) {

	t.Run("escapes arguments", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		got, err := codec.EncodeAlias("transfer", []string{"alice", "1.000 STEEM", "thanks/for all"}, steem.Parameters{Signer: "bob"})

		require.NoError(t, err)
		assert.Equal(t, "steem://sign/transfer/alice/1.000%20STEEM/thanks%2Ffor%20all?s=bob", got)
	})

	t.Run("unknown alias", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		_, err := codec.EncodeAlias("unknown", nil, steem.Parameters{})

		assert.ErrorAs(t, err, &failure.InvalidSigningAction{})
	})

	t.Run("invalid arguments", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		_, err := codec.EncodeAlias("vote", []string{"alice", "post", "heavy"}, steem.Parameters{})

		assert.ErrorAs(t, err, &failure.InvalidAliasArguments{})
	})
}

func TestCodec_DecodeAlias(t *testing.T) {

	t.Run("witness vote matches payload form", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		aliased, _, err := codec.Decode("steem://sign/witness-vote/jesta")
		require.NoError(t, err)
		full, _, err := codec.Decode("steem://sign/op/WyJhY2NvdW50X3dpdG5lc3Nfdm90ZSIseyJhY2NvdW50IjoiX19zaWduZXIiLCJ3aXRuZXNzIjoiamVzdGEiLCJhcHByb3ZlIjp0cnVlfV0.")
		require.NoError(t, err)

		assert.Equal(t, full, aliased)
	})

	t.Run("transfer with escaped memo and parameters", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		tx, params, err := codec.Decode("steem://sign/transfer/alice/1.000%20STEEM/thanks%2Ffor%20all?s=bob&nb")

		require.NoError(t, err)
		require.Len(t, tx.Operations, 1)
		op := tx.Operations[0]
		assert.Equal(t, "transfer", op.Name)
		want := steem.Object{
			{Key: "from", Value: steem.String(steem.PlaceholderSigner)},
			{Key: "to", Value: steem.String("alice")},
			{Key: "amount", Value: steem.String("1.000 STEEM")},
			{Key: "memo", Value: steem.String("thanks/for all")},
		}
		assert.Equal(t, want, op.Params)
		assert.Equal(t, steem.Parameters{Signer: "bob", NoBroadcast: true}, params)
	})

	t.Run("vote weight", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		tx, _, err := codec.Decode("steem://sign/vote/alice/hello-world/-5000")

		require.NoError(t, err)
		require.Len(t, tx.Operations, 1)
		weight, ok := tx.Operations[0].Params.Get("weight")
		require.True(t, ok)
		assert.Equal(t, steem.Number("-5000"), weight)
	})

	t.Run("follow", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		tx, _, err := codec.Decode("steem://sign/follow/bob/alice")

		require.NoError(t, err)
		require.Len(t, tx.Operations, 1)
		op := tx.Operations[0]
		assert.Equal(t, "custom_json", op.Name)
		content, ok := op.Params.Get("json")
		require.True(t, ok)
		assert.Equal(t, steem.String(`["follow",{"follower":"bob","following":"alice","what":["blog"]}]`), content)
	})

	t.Run("delegate", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		tx, _, err := codec.Decode("steem://sign/delegate/alice/1000.000000%20VESTS")

		require.NoError(t, err)
		require.Len(t, tx.Operations, 1)
		assert.Equal(t, "delegate_vesting_shares", tx.Operations[0].Name)
		shares, _ := tx.Operations[0].Params.Get("vesting_shares")
		assert.Equal(t, steem.String("1000.000000 VESTS"), shares)
	})

	invalid := []struct {
		name string
		raw  string
	}{
		{name: "too few arguments", raw: "steem://sign/transfer/alice"},
		{name: "too many arguments", raw: "steem://sign/witness-vote/jesta/true/extra"},
		{name: "vote weight not a number", raw: "steem://sign/vote/alice/post/heavy"},
		{name: "vote weight out of range", raw: "steem://sign/vote/alice/post/10001"},
		{name: "approval flag not a boolean", raw: "steem://sign/witness-vote/jesta/maybe"},
	}

	for _, test := range invalid {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			codec := uri.NewCodec(payload.NewCodec())

			_, _, err := codec.Decode(test.raw)

			assert.ErrorAs(t, err, &failure.InvalidAliasArguments{})
		})
	}
}
