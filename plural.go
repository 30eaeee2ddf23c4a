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
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// PluralCategory is one of the six CLDR plural categories. Most locales
// only ever produce a subset of them; "other" is the only one every locale
// supports.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// PluralOperands are the CLDR plural-rule operands derived from a number
// and how many fraction digits it should be considered to have: n the
// absolute value, i its integer digits, v/w the visible fraction digit
// count with/without trailing zeros, f/t the fraction digits themselves
// with/without trailing zeros.
type PluralOperands struct {
	N float64
	I int64
	V int
	W int
	F int64
	T int64
}

// OperandsFromNumber derives PluralOperands from a Number, honoring an
// explicit MinimumFractionDigits the way a NUMBER()-formatted value would:
// a minimumFractionDigits greater than the digits the value actually has
// pads v and f with trailing zeros, because CLDR rules operate on the
// digits a formatter would actually display, not the mathematical value.
func OperandsFromNumber(n Number) PluralOperands {
	abs := math.Abs(n.Value)
	ops := PluralOperands{N: abs, I: int64(abs)}

	s := strconv.FormatFloat(abs, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		frac := s[dot+1:]
		ops.V = len(frac)
		ops.W = len(strings.TrimRight(frac, "0"))
		if ops.V > 0 {
			fVal, _ := strconv.ParseInt(frac, 10, 64)
			ops.F = fVal
			tVal, _ := strconv.ParseInt(strings.TrimRight(frac, "0"), 10, 64)
			ops.T = tVal
		}
	}

	if n.Options.MinimumFractionDigits != nil && *n.Options.MinimumFractionDigits > ops.V {
		pad := *n.Options.MinimumFractionDigits
		frac := ""
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			frac = s[dot+1:]
		}
		frac += strings.Repeat("0", pad-len(frac))
		ops.V = pad
		if frac != "" {
			fVal, _ := strconv.ParseInt(frac, 10, 64)
			ops.F = fVal
		}
	}

	return ops
}

// PluralRules categorizes a number into a CLDR plural category for a given
// locale and rule type (cardinal or ordinal).
type PluralRules interface {
	Categorize(ops PluralOperands, ruleType NumberType) PluralCategory
}

type pluralRuleFunc func(PluralOperands) PluralCategory

type localePluralRules struct {
	cardinal pluralRuleFunc
	ordinal  pluralRuleFunc
}

func (r localePluralRules) Categorize(ops PluralOperands, ruleType NumberType) PluralCategory {
	fn := r.cardinal
	if ruleType == Ordinal && r.ordinal != nil {
		fn = r.ordinal
	}
	if fn == nil {
		return PluralOther
	}
	return fn(ops)
}

// defaultPluralRuleTable holds a hand-grounded subset of CLDR plural rules,
// keyed by base language subtag. It is intentionally small: it exists to
// make selectors like `{ $count -> [one] ... *[other] ... }` resolve
// correctly for the languages exercised by this package's own tests, not to
// be a complete CLDR implementation.
var defaultPluralRuleTable = map[string]localePluralRules{
	"en": {
		cardinal: func(o PluralOperands) PluralCategory {
			if o.I == 1 && o.V == 0 {
				return PluralOne
			}
			return PluralOther
		},
		ordinal: func(o PluralOperands) PluralCategory {
			mod10 := o.I % 10
			mod100 := o.I % 100
			switch {
			case mod10 == 1 && mod100 != 11:
				return PluralOne
			case mod10 == 2 && mod100 != 12:
				return PluralTwo
			case mod10 == 3 && mod100 != 13:
				return PluralFew
			default:
				return PluralOther
			}
		},
	},
	"ar": {
		cardinal: func(o PluralOperands) PluralCategory {
			n := o.N
			mod100 := math.Mod(n, 100)
			switch {
			case n == 0:
				return PluralZero
			case n == 1:
				return PluralOne
			case n == 2:
				return PluralTwo
			case mod100 >= 3 && mod100 <= 10:
				return PluralFew
			case mod100 >= 11 && mod100 <= 99:
				return PluralMany
			default:
				return PluralOther
			}
		},
	},
	"fr": {
		cardinal: func(o PluralOperands) PluralCategory {
			if o.I == 0 || o.I == 1 {
				return PluralOne
			}
			return PluralOther
		},
	},
	"ja": {
		cardinal: func(PluralOperands) PluralCategory { return PluralOther },
	},
	"ru": {
		cardinal: func(o PluralOperands) PluralCategory {
			mod10 := o.I % 10
			mod100 := o.I % 100
			switch {
			case o.V == 0 && mod10 == 1 && mod100 != 11:
				return PluralOne
			case o.V == 0 && mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
				return PluralFew
			case o.V == 0 && mod10 == 0:
				return PluralMany
			case o.V == 0 && mod10 >= 5 && mod10 <= 9:
				return PluralMany
			case o.V == 0 && mod100 >= 11 && mod100 <= 14:
				return PluralMany
			default:
				return PluralOther
			}
		},
	},
	"pl": {
		cardinal: func(o PluralOperands) PluralCategory {
			mod10 := o.I % 10
			mod100 := o.I % 100
			switch {
			case o.I == 1 && o.V == 0:
				return PluralOne
			case o.V == 0 && mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
				return PluralFew
			case o.V == 0 && (mod10 <= 1 || (mod10 >= 5 && mod10 <= 9) || (mod100 >= 12 && mod100 <= 14)):
				return PluralMany
			default:
				return PluralOther
			}
		},
	},
}

var otherOnlyRules = localePluralRules{
	cardinal: func(PluralOperands) PluralCategory { return PluralOther },
}

// lookupPluralRules resolves the rule set for a locale tag, falling back to
// the tag's base language and finally to an other-only rule set that never
// errors, matching the CLDR fallback convention of treating any locale this
// package doesn't know as a plain singular/plural-less language.
func lookupPluralRules(tag language.Tag) localePluralRules {
	base, conf := tag.Base()
	if conf != language.No {
		name := base.String()
		// Najdi Arabic has its own base subtag but uses the Arabic rules.
		if name == "ars" {
			name = "ar"
		}
		if r, ok := defaultPluralRuleTable[name]; ok {
			return r
		}
	}
	return otherOnlyRules
}
