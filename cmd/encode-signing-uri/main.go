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

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/steem-uri/codec/payload"
	"github.com/optakt/steem-uri/models/steem"
	"github.com/optakt/steem-uri/signing/uri"
	"github.com/optakt/steem-uri/signing/validator"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Command line parameter initialization.
	var (
		flagCallback    string
		flagKind        string
		flagLevel       string
		flagNoBroadcast bool
		flagPayload     string
		flagSigner      string
	)

	pflag.StringVarP(&flagCallback, "callback", "c", "", "callback URL template to open after signing")
	pflag.StringVarP(&flagKind, "kind", "k", uri.KindOperation, fmt.Sprintf("kind of signing request (%v)", uri.Kinds()))
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.BoolVarP(&flagNoBroadcast, "no-broadcast", "n", false, "ask the signer not to broadcast the transaction")
	pflag.StringVarP(&flagPayload, "payload", "p", "", "JSON payload for transaction and operation kinds")
	pflag.StringVarP(&flagSigner, "signer", "s", "", "account that should sign the transaction")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	params := steem.Parameters{
		Signer:      flagSigner,
		Callback:    flagCallback,
		NoBroadcast: flagNoBroadcast,
	}
	err = validator.New().Request(params)
	if err != nil {
		log.Error().Err(err).Msg("invalid signing parameters")
		return failure
	}

	codec := uri.NewCodec(payload.NewCodec())

	var raw string
	switch flagKind {

	case uri.KindTransaction:
		var tx steem.Transaction
		err = json.Unmarshal([]byte(flagPayload), &tx)
		if err != nil {
			log.Error().Err(err).Msg("could not parse transaction payload")
			return failure
		}
		raw, err = codec.EncodeTx(tx, params)

	case uri.KindOperation:
		var op steem.Operation
		err = json.Unmarshal([]byte(flagPayload), &op)
		if err != nil {
			log.Error().Err(err).Msg("could not parse operation payload")
			return failure
		}
		raw, err = codec.EncodeOp(op, params)

	case uri.KindOperations:
		var ops []steem.Operation
		err = json.Unmarshal([]byte(flagPayload), &ops)
		if err != nil {
			log.Error().Err(err).Msg("could not parse operations payload")
			return failure
		}
		raw, err = codec.EncodeOps(ops, params)

	default:
		// Aliases take their arguments from the positional arguments.
		raw, err = codec.EncodeAlias(flagKind, pflag.Args(), params)
	}
	if err != nil {
		log.Error().Str("kind", flagKind).Err(err).Msg("could not encode signing request")
		return failure
	}

	log.Debug().Str("kind", flagKind).Int("length", len(raw)).Msg("signing request encoded")

	fmt.Println(raw)

	return success
}
