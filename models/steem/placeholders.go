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

// Placeholder tokens a producer can use in place of values that only the
// signing application knows at signing time.
const (
	PlaceholderSigner         = "__signer"
	PlaceholderExpiration     = "__expiration"
	PlaceholderRefBlockNum    = "__ref_block_num"
	PlaceholderRefBlockPrefix = "__ref_block_prefix"
)

// IsPlaceholder returns whether the given string is one of the known
// placeholder tokens.
func IsPlaceholder(s string) bool {
	switch s {
	case PlaceholderSigner, PlaceholderExpiration, PlaceholderRefBlockNum, PlaceholderRefBlockPrefix:
		return true
	default:
		return false
	}
}
