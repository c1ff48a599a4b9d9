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
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/steem-uri/models/steem"
)

// Global variables that can be used for testing. They are non-nil valid values for the types commonly needed
// to test signing request components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericAccount = "foo"

	GenericSigners = []string{GenericAccount, "bar"}

	GenericExpiration = time.Date(2017, 12, 6, 17, 24, 46, 0, time.UTC)

	GenericOperation = steem.Operation{
		Name: "vote",
		Params: steem.Object{
			{Key: "voter", Value: steem.String(steem.PlaceholderSigner)},
			{Key: "author", Value: steem.String("alice")},
			{Key: "permlink", Value: steem.String("hello-world")},
			{Key: "weight", Value: steem.Number("10000")},
		},
	}

	GenericOperations = []steem.Operation{
		GenericOperation,
		{
			Name: "transfer",
			Params: steem.Object{
				{Key: "from", Value: steem.String(steem.PlaceholderSigner)},
				{Key: "to", Value: steem.String("bob")},
				{Key: "amount", Value: steem.String("1.000 STEEM")},
				{Key: "memo", Value: steem.String("")},
			},
		},
	}

	GenericTransaction = steem.NewTransaction(GenericOperations...)

	GenericParameters = steem.Parameters{
		Signer:      GenericAccount,
		Callback:    "https://example.com/done?id={{id}}",
		NoBroadcast: true,
	}

	GenericOptions = steem.Options{
		RefBlockNum:     1234,
		RefBlockPrefix:  5678,
		Expiration:      GenericExpiration,
		Signers:         GenericSigners,
		PreferredSigner: "bar",
	}

	GenericURI = "steem://sign/op/WyJhY2NvdW50X3dpdG5lc3Nfdm90ZSIseyJhY2NvdW50IjoiX19zaWduZXIiLCJ3aXRuZXNzIjoiamVzdGEiLCJhcHByb3ZlIjp0cnVlfV0."
)
