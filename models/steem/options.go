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

package steem

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeFormat is the layout of timestamps in Steem transactions. They are
// always expressed in UTC, without a zone suffix.
const TimeFormat = "2006-01-02T15:04:05"

// Options is the context the signing application provides to resolve a
// signing request: the reference block and expiration for the transaction,
// and the accounts it holds keys for.
type Options struct {
	RefBlockNum     uint16    `json:"ref_block_num"`
	RefBlockPrefix  uint32    `json:"ref_block_prefix"`
	Expiration      time.Time `json:"expiration"`
	Signers         []string  `json:"signers"`
	PreferredSigner string    `json:"preferred_signer"`
}

// Result is a resolved signing request.
type Result struct {
	Transaction ResolvedTransaction `json:"transaction"`
	Signer      string              `json:"signer"`
}

// ParseTime parses a timestamp in the Steem format. RFC 3339 timestamps with
// an explicit zone are also accepted and converted to UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, s)
	if err == nil {
		return t, nil
	}
	t, rfcErr := time.Parse(time.RFC3339, s)
	if rfcErr != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// options has the fields of Options without its JSON methods.
type options Options

type optionsJSON struct {
	options
	Expiration string `json:"expiration"`
}

// MarshalJSON writes the expiration in the Steem format.
func (o Options) MarshalJSON() ([]byte, error) {
	out := optionsJSON{options: options(o)}
	if !o.Expiration.IsZero() {
		out.Expiration = o.Expiration.UTC().Format(TimeFormat)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads options with an expiration in the Steem format or in
// RFC 3339. A missing or empty expiration is left zero.
func (o *Options) UnmarshalJSON(data []byte) error {

	var in optionsJSON
	err := json.Unmarshal(data, &in)
	if err != nil {
		return err
	}

	opts := Options(in.options)
	if in.Expiration != "" {
		opts.Expiration, err = ParseTime(in.Expiration)
		if err != nil {
			return fmt.Errorf("could not parse expiration: %w", err)
		}
	}

	*o = opts
	return nil
}
