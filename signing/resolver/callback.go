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
	"strings"

	"github.com/optakt/steem-uri/models/steem"
)

// Callback template tokens.
const (
	TokenSignature = "{{sig}}"
	TokenID        = "{{id}}"
	TokenBlock     = "{{block}}"
	TokenIndex     = "{{txn}}"
)

// Callback fills in the template tokens of a callback URL with the given
// confirmation. Tokens for missing confirmation data are replaced with the
// empty string; unknown tokens are left as they are.
func Callback(url string, conf steem.Confirmation) string {

	var block, index string
	if conf.Block != nil {
		block = strconv.FormatUint(*conf.Block, 10)
	}
	if conf.Index != nil {
		index = strconv.FormatUint(*conf.Index, 10)
	}

	replacer := strings.NewReplacer(
		TokenSignature, conf.Signature,
		TokenID, conf.ID,
		TokenBlock, block,
		TokenIndex, index,
	)

	return strings.TrimSpace(replacer.Replace(url))
}
