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

package validator

import (
	"fmt"
	"strings"
)

const (
	accountMinLength = 3
	accountMaxLength = 16
)

// AccountName checks the given name against the Steem account naming rules:
// three to sixteen characters, made of dot-separated labels of at least three
// characters, where each label starts with a lowercase letter, ends with a
// lowercase letter or digit and contains no consecutive dashes.
func AccountName(name string) error {

	if len(name) < accountMinLength || len(name) > accountMaxLength {
		return fmt.Errorf("account name should be between %d and %d characters long", accountMinLength, accountMaxLength)
	}

	for _, label := range strings.Split(name, ".") {
		if len(label) < accountMinLength {
			return fmt.Errorf("each account segment should be at least %d characters long", accountMinLength)
		}
		if !isLower(label[0]) {
			return fmt.Errorf("each account segment should start with a letter")
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if !isLower(c) && !isDigit(c) && c != '-' {
				return fmt.Errorf("each account segment should have only letters, digits, or dashes")
			}
		}
		if strings.Contains(label, "--") {
			return fmt.Errorf("each account segment should have only one dash in a row")
		}
		last := label[len(label)-1]
		if !isLower(last) && !isDigit(last) {
			return fmt.Errorf("each account segment should end in a letter or digit")
		}
	}

	return nil
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
