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

package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/steem-uri/signing/failure"
	"github.com/optakt/steem-uri/testing/mocks"
)

func TestDescription(t *testing.T) {
	descBody := "test"
	kind := "transfer"
	count := 3
	signers := mocks.GenericSigners

	t.Run("full description with fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithErr(mocks.GenericError),
			failure.WithInt("count", count),
			failure.WithString("kind", kind),
			failure.WithStrings("signers", signers...),
		)

		assert.Equal(t, desc.Text, descBody)
		assert.NotEqual(t, desc.String(), descBody)
		assert.Contains(t, desc.Fields.String(), mocks.GenericError.Error())
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("count: %v", count))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("kind: %v", kind))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("signers: %v", signers))
	})

	t.Run("fields are iterated in order", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithString("first", "a"),
			failure.WithString("second", "b"),
		)

		var keys []string
		desc.Fields.Iterate(func(key string, _ interface{}) {
			keys = append(keys, key)
		})

		assert.Equal(t, []string{"first", "second"}, keys)
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody)

		assert.Equal(t, desc.Text, descBody)
		assert.Equal(t, desc.String(), descBody)
	})
}

func TestInvalidPayload(t *testing.T) {
	err := failure.InvalidPayload{
		Description: failure.NewDescription("could not parse payload"),
		Encoding:    "json",
		Cause:       mocks.GenericError,
	}

	assert.True(t, errors.Is(err, mocks.GenericError))
	assert.Contains(t, err.Error(), "json")
}
