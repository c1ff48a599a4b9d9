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

package signing

import (
	"fmt"

	"github.com/OneOfOne/xxhash"
	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog"

	"github.com/optakt/steem-uri/models/steem"
)

// Config is the configuration of the signing API.
type Config struct {
	CacheSize uint64
}

// DefaultConfig is the default configuration of the signing API.
var DefaultConfig = Config{
	CacheSize: 16 * 1000 * 1000, // ~16 MB
}

// WithCacheSize sets the maximum size of the decode cache, in bytes.
func WithCacheSize(size uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.CacheSize = size
	}
}

// Controller implements a JSON API that lets signing applications written in
// any language encode, decode and resolve signing requests.
type Controller struct {
	log      zerolog.Logger
	codec    Codec
	validate Validator
	cache    *ristretto.Cache
}

// decoded is a cached decode result. The URI is kept so that hash
// collisions are detected on lookup.
type decoded struct {
	uri    string
	tx     steem.Transaction
	params steem.Parameters
}

// NewController creates a new signing API controller.
func NewController(log zerolog.Logger, codec Codec, validate Validator, options ...func(*Config)) (*Controller, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	// Ristretto recommends keeping ten times as many counters as items in
	// the cache when full. Signing URIs are usually a few hundred bytes.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.CacheSize) / 100 * 10,
		MaxCost:     int64(cfg.CacheSize),
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize cache: %w", err)
	}

	c := Controller{
		log:      log.With().Str("component", "signing_api").Logger(),
		codec:    codec,
		validate: validate,
		cache:    cache,
	}

	return &c, nil
}

// Close stops the goroutines of the decode cache. Decoding still works after
// the controller is closed, but results are no longer cached.
func (c *Controller) Close() {
	c.cache.Close()
}

// decode decodes the given signing URI, using the cache when possible.
func (c *Controller) decode(raw string) (steem.Transaction, steem.Parameters, error) {

	key := xxhash.ChecksumString64(raw)
	val, ok := c.cache.Get(key)
	if ok {
		entry, ok := val.(decoded)
		if ok && entry.uri == raw {
			cacheHits.Inc()
			return entry.tx, entry.params, nil
		}
	}

	tx, params, err := c.codec.Decode(raw)
	if err != nil {
		return steem.Transaction{}, steem.Parameters{}, err
	}

	entry := decoded{
		uri:    raw,
		tx:     tx,
		params: params,
	}
	_ = c.cache.Set(key, entry, int64(len(raw)))

	return tx, params, nil
}
