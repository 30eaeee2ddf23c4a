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
	"golang.org/x/text/language"
)

func TestOperandsFromNumberBasic(t *testing.T) {
	ops := OperandsFromNumber(NewNumber(3))
	require.Equal(t, PluralOperands{N: 3, I: 3}, ops)
}

func TestOperandsFromNumberFraction(t *testing.T) {
	ops := OperandsFromNumber(NewNumberFromLiteral("1.50"))
	require.Equal(t, int64(1), ops.I)
	require.Equal(t, 2, ops.V)
	require.Equal(t, 1, ops.W)
	require.Equal(t, int64(50), ops.F)
	require.Equal(t, int64(5), ops.T)
}

func TestOperandsFromNumberPadsMinimumFractionDigits(t *testing.T) {
	ops := OperandsFromNumber(NewNumberFromLiteral("5"))
	require.Equal(t, 0, ops.V)

	padded := 2
	n := Number{Value: 5, Options: NumberOptions{MinimumFractionDigits: &padded}}
	ops = OperandsFromNumber(n)
	require.Equal(t, 2, ops.V)
	require.Equal(t, int64(0), ops.F)
}

func TestLookupPluralRulesArabicCardinal(t *testing.T) {
	rules := lookupPluralRules(language.Make("ars"))
	require.Equal(t, PluralZero, rules.Categorize(OperandsFromNumber(NewNumber(0)), Cardinal))
	require.Equal(t, PluralOne, rules.Categorize(OperandsFromNumber(NewNumber(1)), Cardinal))
	require.Equal(t, PluralTwo, rules.Categorize(OperandsFromNumber(NewNumber(2)), Cardinal))
	require.Equal(t, PluralFew, rules.Categorize(OperandsFromNumber(NewNumber(5)), Cardinal))
	require.Equal(t, PluralMany, rules.Categorize(OperandsFromNumber(NewNumber(11)), Cardinal))
	require.Equal(t, PluralOther, rules.Categorize(OperandsFromNumber(NewNumber(100)), Cardinal))
}

func TestLookupPluralRulesEnglishOrdinal(t *testing.T) {
	rules := lookupPluralRules(language.Make("en"))
	require.Equal(t, PluralOne, rules.Categorize(OperandsFromNumber(NewNumber(1)), Ordinal))
	require.Equal(t, PluralTwo, rules.Categorize(OperandsFromNumber(NewNumber(2)), Ordinal))
	require.Equal(t, PluralFew, rules.Categorize(OperandsFromNumber(NewNumber(3)), Ordinal))
	require.Equal(t, PluralOther, rules.Categorize(OperandsFromNumber(NewNumber(11)), Ordinal))
}

func TestLookupPluralRulesUnknownLocaleFallsBackToOther(t *testing.T) {
	rules := lookupPluralRules(language.Make("xx"))
	require.Equal(t, PluralOther, rules.Categorize(OperandsFromNumber(NewNumber(1)), Cardinal))
}
