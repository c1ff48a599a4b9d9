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
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/steem-uri/api/signing"
	"github.com/optakt/steem-uri/codec/payload"
	"github.com/optakt/steem-uri/service/metrics"
	"github.com/optakt/steem-uri/service/profiler"
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

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagCache    uint64
		flagLevel    string
		flagMetrics  string
		flagPort     uint16
		flagProfiler string
	)

	pflag.Uint64VarP(&flagCache, "cache", "e", signing.DefaultConfig.CacheSize, "maximum cache size for decoded signing requests in bytes")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to expose metrics (no metrics are exposed when left empty)")
	pflag.Uint16VarP(&flagPort, "port", "p", 8080, "port to host the signing API on")
	pflag.StringVar(&flagProfiler, "profiler-address", "", "address for net/http/pprof profiler (profiler is disabled if left empty)")

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
	elog := lecho.From(log)

	// Signing API initialization.
	codec := uri.NewCodec(payload.NewCodec())
	validate := validator.New()
	ctrl, err := signing.NewController(log, codec, validate, signing.WithCacheSize(flagCache))
	if err != nil {
		log.Error().Err(err).Msg("could not initialize signing API")
		return failure
	}
	defer ctrl.Close()

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.Use(signing.Metrics)
	server.POST("/encode/tx", ctrl.EncodeTransaction)
	server.POST("/encode/op", ctrl.EncodeOperation)
	server.POST("/encode/ops", ctrl.EncodeOperations)
	server.POST("/decode", ctrl.Decode)
	server.POST("/resolve", ctrl.Resolve)
	server.POST("/callback", ctrl.Callback)

	var msvr *metrics.Server
	if flagMetrics != "" {
		msvr = metrics.NewServer(log, flagMetrics)
	}
	var psvr *profiler.Server
	if flagProfiler != "" {
		psvr = profiler.NewServer(log, flagProfiler)
	}

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Uint16("port", flagPort).Msg("Steem URI Server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Steem URI Server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Steem URI Server stopped")
	}()
	if msvr != nil {
		go func() {
			err := msvr.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}
	if psvr != nil {
		go func() {
			err := psvr.Start()
			if err != nil {
				log.Warn().Err(err).Msg("profiler server failed")
			}
		}()
	}

	select {
	case <-sig:
		log.Info().Msg("Steem URI Server stopping")
	case <-done:
		log.Info().Msg("Steem URI Server done")
	case <-failed:
		log.Warn().Msg("Steem URI Server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var merr *multierror.Error
	err = server.Shutdown(ctx)
	if err != nil {
		merr = multierror.Append(merr, fmt.Errorf("could not shut down signing API: %w", err))
	}
	if msvr != nil {
		err = msvr.Stop(ctx)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if psvr != nil {
		err = psvr.Stop(ctx)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	err = merr.ErrorOrNil()
	if err != nil {
		log.Error().Err(err).Msg("could not shut down cleanly")
		return failure
	}

	return success
}
