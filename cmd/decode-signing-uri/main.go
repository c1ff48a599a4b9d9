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
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/steem-uri/api/signing"
	"github.com/optakt/steem-uri/codec/payload"
	"github.com/optakt/steem-uri/models/steem"
	"github.com/optakt/steem-uri/signing/resolver"
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
		flagConfirmBlock uint64
		flagConfirmID    string
		flagConfirmSig   string
		flagConfirmTxn   uint64
		flagExpiration   string
		flagLevel        string
		flagPreferred    string
		flagRefNum       uint16
		flagRefPrefix    uint32
		flagSigners      []string
	)

	pflag.Uint64Var(&flagConfirmBlock, "confirm-block", 0, "block number of the broadcast transaction, for the callback")
	pflag.StringVar(&flagConfirmID, "confirm-id", "", "ID of the broadcast transaction, for the callback")
	pflag.StringVar(&flagConfirmSig, "confirm-sig", "", "hex-encoded signature of the transaction, for the callback")
	pflag.Uint64Var(&flagConfirmTxn, "confirm-txn", 0, "index of the broadcast transaction in its block, for the callback")
	pflag.StringVarP(&flagExpiration, "expiration", "e", "", "transaction expiration, as 2006-01-02T15:04:05 in UTC or RFC 3339 (default one minute from now)")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagPreferred, "preferred", "p", "", "account to sign with when the request names no signer")
	pflag.Uint16VarP(&flagRefNum, "ref-block-num", "n", 0, "reference block number for transaction resolution")
	pflag.Uint32VarP(&flagRefPrefix, "ref-block-prefix", "x", 0, "reference block prefix for transaction resolution")
	pflag.StringSliceVarP(&flagSigners, "signers", "s", nil, "accounts available for signing; enables transaction resolution")

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

	validate := validator.New()

	// Resolution is only done when the signing application tells us which
	// accounts it holds keys for.
	resolve := len(flagSigners) > 0
	var options steem.Options
	if resolve {
		expiration := time.Now().UTC().Add(time.Minute).Truncate(time.Second)
		if flagExpiration != "" {
			expiration, err = steem.ParseTime(flagExpiration)
			if err != nil {
				log.Error().Str("expiration", flagExpiration).Err(err).Msg("could not parse expiration")
				return failure
			}
		}
		options = steem.Options{
			RefBlockNum:     flagRefNum,
			RefBlockPrefix:  flagRefPrefix,
			Expiration:      expiration,
			Signers:         flagSigners,
			PreferredSigner: flagPreferred,
		}
		err = validate.Request(options)
		if err != nil {
			log.Error().Err(err).Msg("invalid signing options")
			return failure
		}
	}

	// A confirmation is only available once a signature was given.
	var conf *steem.Confirmation
	if flagConfirmSig != "" {
		conf = &steem.Confirmation{
			Signature: flagConfirmSig,
			ID:        flagConfirmID,
		}
		if pflag.CommandLine.Changed("confirm-block") {
			conf.Block = &flagConfirmBlock
		}
		if pflag.CommandLine.Changed("confirm-txn") {
			conf.Index = &flagConfirmTxn
		}
		err = validate.Request(*conf)
		if err != nil {
			log.Error().Err(err).Msg("invalid confirmation")
			return failure
		}
	}

	// Signing requests are taken from the arguments, or read line by line
	// from standard input if there are none.
	raws := pflag.Args()
	if len(raws) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			raws = append(raws, line)
		}
		err = scanner.Err()
		if err != nil {
			log.Error().Err(err).Msg("could not read signing requests")
			return failure
		}
	}

	codec := uri.NewCodec(payload.NewCodec())
	out := json.NewEncoder(os.Stdout)
	out.SetEscapeHTML(false)

	var errs *multierror.Error
	for i, raw := range raws {

		tx, params, err := codec.Decode(raw)
		if err != nil {
			log.Warn().Int("index", i).Err(err).Msg("could not decode signing request")
			errs = multierror.Append(errs, fmt.Errorf("could not decode signing request %d: %w", i, err))
			continue
		}

		if !resolve {
			err = out.Encode(signing.DecodeResponse{Transaction: tx, Params: params})
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("could not write signing request %d: %w", i, err))
			}
			continue
		}

		result, err := resolver.Transaction(tx, params, options)
		if err != nil {
			log.Warn().Int("index", i).Err(err).Msg("could not resolve signing request")
			errs = multierror.Append(errs, fmt.Errorf("could not resolve signing request %d: %w", i, err))
			continue
		}

		err = out.Encode(signing.ResolveResponse{Transaction: result.Transaction, Signer: result.Signer, Params: params})
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("could not write signing request %d: %w", i, err))
			continue
		}

		if conf != nil && params.Callback != "" {
			err = out.Encode(signing.CallbackResponse{URL: resolver.Callback(params.Callback, *conf)})
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("could not write callback %d: %w", i, err))
			}
		}
	}

	err = errs.ErrorOrNil()
	if err != nil {
		log.Error().Int("requests", len(raws)).Int("failed", len(errs.Errors)).Msg("could not process all signing requests")
		return failure
	}

	log.Debug().Int("requests", len(raws)).Msg("signing requests processed")

	return success
}
