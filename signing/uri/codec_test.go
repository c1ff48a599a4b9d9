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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/steem-uri/codec/b64u"
	"github.com/optakt/steem-uri/codec/payload"
	"github.com/optakt/steem-uri/models/steem"
	"github.com/optakt/steem-uri/signing/failure"
	"github.com/optakt/steem-uri/signing/uri"
	"github.com/optakt/steem-uri/testing/mocks"
)

func witnessVote() steem.Operation {
	return steem.Operation{
		Name: "account_witness_vote",
		Params: steem.Object{
			{Key: "account", Value: steem.String(steem.PlaceholderSigner)},
			{Key: "witness", Value: steem.String("jesta")},
			{Key: "approve", Value: steem.Bool(true)},
		},
	}
}

func TestCodec_EncodeOp(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		got, err := codec.EncodeOp(witnessVote(), steem.Parameters{})

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericURI, got)
	})

	t.Run("parameters in fixed order", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		got, err := codec.EncodeOp(witnessVote(), mocks.GenericParameters)

		require.NoError(t, err)
		want := mocks.GenericURI + "?nb=&s=foo&cb=" + b64u.EncodeString(mocks.GenericParameters.Callback)
		assert.Equal(t, want, got)
	})

	t.Run("signer is escaped", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		got, err := codec.EncodeOp(witnessVote(), steem.Parameters{Signer: "a b&c"})

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericURI+"?s=a+b%26c", got)
	})

	t.Run("handles payload codec failure", func(t *testing.T) {
		t.Parallel()

		codec := mocks.BaselinePayloadCodec(t)
		codec.MarshalFunc = func(steem.Value) (string, error) {
			return "", mocks.GenericError
		}

		_, err := uri.NewCodec(codec).EncodeOp(witnessVote(), steem.Parameters{})

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func TestCodec_EncodeTx(t *testing.T) {
	codec := uri.NewCodec(payload.NewCodec())

	got, err := codec.EncodeTx(mocks.GenericTransaction, steem.Parameters{})
	require.NoError(t, err)

	want := "steem://sign/tx/" + b64u.EncodeString(
		`{"ref_block_num":"__ref_block_num","ref_block_prefix":"__ref_block_prefix","expiration":"__expiration","extensions":[],`+
			`"operations":[["vote",{"voter":"__signer","author":"alice","permlink":"hello-world","weight":10000}],`+
			`["transfer",{"from":"__signer","to":"bob","amount":"1.000 STEEM","memo":""}]]}`,
	)
	assert.Equal(t, want, got)
}

func TestCodec_EncodeOps(t *testing.T) {
	codec := uri.NewCodec(payload.NewCodec())

	got, err := codec.EncodeOps([]steem.Operation{witnessVote()}, steem.Parameters{NoBroadcast: true})
	require.NoError(t, err)

	want := "steem://sign/ops/" + b64u.EncodeString(`[["account_witness_vote",{"account":"__signer","witness":"jesta","approve":true}]]`) + "?nb="
	assert.Equal(t, want, got)
}

func TestCodec_Decode(t *testing.T) {

	t.Run("single operation", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		tx, params, err := codec.Decode(mocks.GenericURI)

		require.NoError(t, err)
		assert.Equal(t, steem.NewTransaction(witnessVote()), tx)
		assert.Equal(t, steem.Parameters{}, params)
	})

	t.Run("round trip of each kind", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		raw, err := codec.EncodeTx(mocks.GenericTransaction, mocks.GenericParameters)
		require.NoError(t, err)
		tx, params, err := codec.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericTransaction, tx)
		assert.Equal(t, mocks.GenericParameters, params)

		raw, err = codec.EncodeOps(mocks.GenericOperations, mocks.GenericParameters)
		require.NoError(t, err)
		tx, params, err = codec.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericOperations, tx.Operations)
		assert.Equal(t, mocks.GenericParameters, params)

		raw, err = codec.EncodeOp(mocks.GenericOperation, mocks.GenericParameters)
		require.NoError(t, err)
		tx, params, err = codec.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, []steem.Operation{mocks.GenericOperation}, tx.Operations)
		assert.Equal(t, mocks.GenericParameters, params)
	})

	t.Run("flag without value", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())

		_, params, err := codec.Decode(mocks.GenericURI + "?nb&s=foo")

		require.NoError(t, err)
		assert.True(t, params.NoBroadcast)
		assert.Equal(t, "foo", params.Signer)
	})

	t.Run("escaped payload", func(t *testing.T) {
		t.Parallel()

		codec := uri.NewCodec(payload.NewCodec())
		escaped := "steem://sign/ops/" + "W1siYWNjb3VudF93aXRuZXNzX3ZvdGUiLHsiYWNjb3VudCI6Il9fc2lnbmVyIiwid2l0bmVzcyI6Implc3RhIiwiYXBwcm92ZSI6dHJ1ZX1dXQ%2E%2E"

		tx, _, err := codec.Decode(escaped)

		require.NoError(t, err)
		assert.Equal(t, []steem.Operation{witnessVote()}, tx.Operations)
	})

	t.Run("handles payload codec failure", func(t *testing.T) {
		t.Parallel()

		payloads := mocks.BaselinePayloadCodec(t)
		payloads.UnmarshalFunc = func(string) (steem.Value, error) {
			return nil, mocks.GenericError
		}

		_, _, err := uri.NewCodec(payloads).Decode(mocks.GenericURI)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	invalid := []struct {
		name  string
		raw   string
		check func(t *testing.T, err error)
	}{
		{
			name:  "unparseable",
			raw:   "://sign/tx/AA..",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.MalformedURI{}) },
		},
		{
			name:  "wrong protocol",
			raw:   "http://sign/tx/AA..",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.InvalidProtocol{}) },
		},
		{
			name:  "wrong action",
			raw:   "steem://signx/tx/AA..",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.InvalidAction{}) },
		},
		{
			name:  "unknown kind",
			raw:   "steem://sign/foo/AA..",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.InvalidSigningAction{}) },
		},
		{
			name:  "missing payload",
			raw:   "steem://sign/tx",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.MalformedURI{}) },
		},
		{
			name:  "extra path segment",
			raw:   "steem://sign/tx/AA../AA..",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.MalformedURI{}) },
		},
		{
			name: "trailing slash after payload",
			raw:  mocks.GenericURI + "/",
			check: func(t *testing.T, err error) {
				assert.ErrorAs(t, err, &failure.MalformedURI{})
				assert.False(t, errors.As(err, &failure.InvalidSigningAction{}))
			},
		},
		{
			name:  "trailing slash without payload",
			raw:   "steem://sign/op/",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.MalformedURI{}) },
		},
		{
			name:  "invalid base64u payload",
			raw:   "steem://sign/op/Zg",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.MalformedEncoding{}) },
		},
		{
			name: "payload of wrong shape",
			raw:  "steem://sign/op/e30.",
			check: func(t *testing.T, err error) {
				var invalid failure.InvalidPayload
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, payload.EncodingJSON, invalid.Encoding)
			},
		},
		{
			name:  "invalid callback encoding",
			raw:   mocks.GenericURI + "?cb=Zg",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.MalformedEncoding{}) },
		},
		{
			name:  "invalid query escaping",
			raw:   mocks.GenericURI + "?s=%zz",
			check: func(t *testing.T, err error) { assert.ErrorAs(t, err, &failure.MalformedURI{}) },
		},
	}

	for _, test := range invalid {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			codec := uri.NewCodec(payload.NewCodec())

			_, _, err := codec.Decode(test.raw)

			require.Error(t, err)
			test.check(t, err)
		})
	}
}

func TestDecodeParameters(t *testing.T) {

	t.Run("empty query", func(t *testing.T) {
		t.Parallel()

		params, err := uri.DecodeParameters("")

		require.NoError(t, err)
		assert.Equal(t, steem.Parameters{}, params)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		params, err := uri.DecodeParameters(uri.EncodeParameters(mocks.GenericParameters))

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericParameters, params)
	})
}
