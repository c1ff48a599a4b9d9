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

package steem_test

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/steem-uri/models/steem"
)

func TestUnmarshal(t *testing.T) {

	t.Run("keeps member order", func(t *testing.T) {
		t.Parallel()

		got, err := steem.Unmarshal([]byte(`{"b":1,"a":[true,null,"x"],"c":{}}`))

		require.NoError(t, err)
		want := steem.Object{
			{Key: "b", Value: steem.Number("1")},
			{Key: "a", Value: steem.Array{steem.Bool(true), steem.Null{}, steem.String("x")}},
			{Key: "c", Value: steem.Object{}},
		}
		assert.Equal(t, want, got)
	})

	t.Run("keeps exact numbers", func(t *testing.T) {
		t.Parallel()

		got, err := steem.Unmarshal([]byte(`[18446744073709551615,1.50,-0]`))

		require.NoError(t, err)
		want := steem.Array{steem.Number("18446744073709551615"), steem.Number("1.50"), steem.Number("-0")}
		assert.Equal(t, want, got)
	})

	t.Run("duplicate keys keep the last value", func(t *testing.T) {
		t.Parallel()

		got, err := steem.Unmarshal([]byte(`{"a":1,"b":2,"a":3}`))

		require.NoError(t, err)
		want := steem.Object{
			{Key: "a", Value: steem.Number("3")},
			{Key: "b", Value: steem.Number("2")},
		}
		assert.Equal(t, want, got)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		got, err := steem.Unmarshal([]byte(" \"x\"\n"))

		require.NoError(t, err)
		assert.Equal(t, steem.String("x"), got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, err := steem.Unmarshal([]byte(``))

		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("truncated input", func(t *testing.T) {
		t.Parallel()

		_, err := steem.Unmarshal([]byte(`{"a":`))

		assert.Error(t, err)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()

		_, err := steem.Unmarshal([]byte(`{} {}`))

		assert.Error(t, err)
	})
}

func TestMarshal(t *testing.T) {

	t.Run("compact output in member order", func(t *testing.T) {
		t.Parallel()

		v := steem.Object{
			{Key: "z", Value: steem.Number("1")},
			{Key: "a", Value: steem.Array{steem.Bool(false), steem.Null{}}},
		}

		got, err := steem.Marshal(v)

		require.NoError(t, err)
		assert.Equal(t, `{"z":1,"a":[false,null]}`, string(got))
	})

	t.Run("escapes like javascript", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input string
			want  string
		}{
			{input: "a\u2028b\u2029c", want: "\"a\u2028b\u2029c\""},
			{input: `say "hi" \ bye`, want: `"say \"hi\" \\ bye"`},
			{input: "\b\f\n\r\t", want: `"\b\f\n\r\t"`},
			{input: "\x00\x1f\x7f", want: "\"\\u0000\\u001f\x7f\""},
			{input: "caf\u00e9 \U0001F600", want: "\"caf\u00e9 \U0001F600\""},
			{input: "a\xffb", want: `"a\ufffdb"`},
		}

		for _, test := range tests {
			got, err := steem.Marshal(steem.String(test.input))

			require.NoError(t, err)
			assert.Equal(t, test.want, string(got))
		}
	})

	t.Run("no html escaping", func(t *testing.T) {
		t.Parallel()

		got, err := steem.Marshal(steem.String(`<a href="x">&</a>`))

		require.NoError(t, err)
		assert.Equal(t, `"<a href=\"x\">&</a>"`, string(got))
	})

	t.Run("nil value", func(t *testing.T) {
		t.Parallel()

		got, err := steem.Marshal(nil)

		require.NoError(t, err)
		assert.Equal(t, `null`, string(got))
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()

		_, err := steem.Marshal(steem.Number("NaN"))

		assert.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		doc := `{"from":"__signer","amount":"1.000 STEEM","nested":{"list":[1,2.5,"three"]},"ok":true}`

		v, err := steem.Unmarshal([]byte(doc))
		require.NoError(t, err)
		got, err := steem.Marshal(v)

		require.NoError(t, err)
		assert.Equal(t, doc, string(got))
	})

	t.Run("standard library interop", func(t *testing.T) {
		t.Parallel()

		wrapper := struct {
			Params steem.Object `json:"params"`
		}{
			Params: steem.Object{{Key: "b", Value: steem.String("x")}, {Key: "a", Value: steem.Number("2")}},
		}

		got, err := json.Marshal(wrapper)
		require.NoError(t, err)
		assert.Equal(t, `{"params":{"b":"x","a":2}}`, string(got))

		var decoded struct {
			Params steem.Object `json:"params"`
		}
		err = json.Unmarshal(got, &decoded)
		require.NoError(t, err)
		assert.Equal(t, wrapper.Params, decoded.Params)
	})
}

func TestObject_With(t *testing.T) {
	obj := steem.Object{{Key: "a", Value: steem.Number("1")}}

	replaced := obj.With("a", steem.Number("2"))
	appended := obj.With("b", steem.Bool(true))

	assert.Equal(t, steem.Object{{Key: "a", Value: steem.Number("1")}}, obj)
	assert.Equal(t, steem.Object{{Key: "a", Value: steem.Number("2")}}, replaced)
	assert.Equal(t, steem.Object{{Key: "a", Value: steem.Number("1")}, {Key: "b", Value: steem.Bool(true)}}, appended)

	val, ok := appended.Get("b")
	assert.True(t, ok)
	assert.Equal(t, steem.Bool(true), val)

	_, ok = appended.Get("c")
	assert.False(t, ok)
}
