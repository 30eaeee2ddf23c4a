// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ftl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNumberFromLiteralInfersFractionDigits(t *testing.T) {
	n := NewNumberFromLiteral("5.0")
	require.NotNil(t, n.Options.MinimumFractionDigits)
	require.Equal(t, 1, *n.Options.MinimumFractionDigits)
	require.Equal(t, 5.0, n.Value)
}

func TestNewNumberFromLiteralWithoutFraction(t *testing.T) {
	n := NewNumberFromLiteral("5")
	require.Nil(t, n.Options.MinimumFractionDigits)
	require.Equal(t, 5.0, n.Value)
}

func TestNumberOptionsMergeFromNamedArguments(t *testing.T) {
	var opts NumberOptions
	opts.Merge(map[string]Value{
		"style":                 String("currency"),
		"currency":              String("USD"),
		"minimumFractionDigits": NewNumber(2),
	})
	require.Equal(t, Currency, opts.Style)
	require.Equal(t, "USD", opts.Currency)
	require.NotNil(t, opts.MinimumFractionDigits)
	require.Equal(t, 2, *opts.MinimumFractionDigits)
}

func TestNumberOptionsMergeIgnoresUnknownValues(t *testing.T) {
	var opts NumberOptions
	before := opts
	opts.Merge(map[string]Value{"style": String("not-a-real-style")})
	require.Equal(t, before, opts)
}

func TestMatchesStringToString(t *testing.T) {
	require.True(t, Matches(String("one"), String("one"), nil))
	require.False(t, Matches(String("one"), String("other"), nil))
}

func TestMatchesNumberToNumberIgnoresOptions(t *testing.T) {
	minDigits := 2
	a := Number{Value: 1, Options: NumberOptions{MinimumFractionDigits: &minDigits}}
	b := Number{Value: 1}
	require.True(t, Matches(a, b, nil))
}

func TestMatchesPluralCategoryAgainstNumber(t *testing.T) {
	categorize := func(n Number) PluralCategory {
		if n.Value == 1 {
			return PluralOne
		}
		return PluralOther
	}
	require.True(t, Matches(String("one"), NewNumber(1), categorize))
	require.False(t, Matches(String("one"), NewNumber(2), categorize))
}

func TestMatchesMismatchedKindsIsFalse(t *testing.T) {
	require.False(t, Matches(String("one"), NoneValue{}, nil))
	require.False(t, Matches(NewNumber(1), String("one"), nil))
}

func TestErrorValueAndNoneValueFormatAsPlaceholder(t *testing.T) {
	require.Equal(t, "???", ErrorValue{}.Format())
	require.Equal(t, "???", NoneValue{}.Format())
}
