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
	"strconv"
	"strings"
)

// Value is anything that can be passed into Format as an argument, produced
// by a registered function, or selected over by a select expression. The
// concrete types are String, Number, ErrorValue, and NoneValue.
type Value interface {
	// Format renders the value the way it should appear in pattern output.
	Format() string
	isValue()
}

// String is a plain text argument or function result.
type String string

func (s String) Format() string { return string(s) }
func (String) isValue()         {}

// ErrorValue is returned by a registered function to signal that it could
// not produce a result for its arguments. The resolver treats invoking a
// function that returns ErrorValue the same as a missing reference.
type ErrorValue struct{ Err error }

func (e ErrorValue) Format() string { return "???" }
func (ErrorValue) isValue()         {}

// NoneValue stands in for an argument or variable that was looked up but is
// genuinely absent, as distinct from one that resolves to the zero value of
// its type. Formatting it produces the placeholder text "???".
type NoneValue struct{}

func (NoneValue) Format() string { return "???" }
func (NoneValue) isValue()       {}

// NumberType selects whether a Number participates in cardinal ("1 file")
// or ordinal ("1st file") plural categorization.
type NumberType int

const (
	Cardinal NumberType = iota
	Ordinal
)

// NumberStyle is the display style a NUMBER()-built value should be
// formatted with. FTL formatting itself (actually rendering a Decimal /
// Currency / Percent value to text) is out of scope here; Style and its
// siblings exist so that a host application's own formatter can read them
// off a resolved Number.
type NumberStyle int

const (
	Decimal NumberStyle = iota
	Currency
	Percent
)

// CurrencyDisplay controls how a Currency-styled Number's unit should be
// rendered by a downstream formatter.
type CurrencyDisplay int

const (
	CurrencySymbol CurrencyDisplay = iota
	CurrencyCode
	CurrencyName
)

// UseGrouping controls digit grouping ("1,234" vs "1234") for a downstream
// formatter.
type UseGrouping int

const (
	GroupingAuto UseGrouping = iota
	GroupingFalse
	GroupingAlways
	GroupingMin2
)

// NumberOptions carries the NUMBER()-style formatting and plural-rule
// options attached to a Number. Digit-count fields are pointers so that
// "unset" (use the CLDR/implementation default) is distinguishable from an
// explicit zero.
type NumberOptions struct {
	Type            NumberType
	Style           NumberStyle
	Currency        string
	CurrencyDisplay CurrencyDisplay
	UseGrouping     UseGrouping

	MinimumIntegerDigits     *int
	MinimumFractionDigits    *int
	MaximumFractionDigits    *int
	MinimumSignificantDigits *int
	MaximumSignificantDigits *int
}

// Merge overlays NUMBER()-recognized named call arguments onto o. Arguments
// with unrecognized names or values of the wrong kind are ignored, matching
// the source runtime's permissive behavior: a typo in a function argument
// degrades formatting, it does not fail the whole placeable.
func (o *NumberOptions) Merge(args map[string]Value) {
	str := func(name string) (string, bool) {
		v, ok := args[name]
		if !ok {
			return "", false
		}
		s, ok := v.(String)
		return string(s), ok
	}
	num := func(name string) (int, bool) {
		v, ok := args[name]
		if !ok {
			return 0, false
		}
		switch n := v.(type) {
		case Number:
			return int(n.Value), true
		case String:
			i, err := strconv.Atoi(string(n))
			return i, err == nil
		}
		return 0, false
	}

	if s, ok := str("type"); ok {
		switch s {
		case "cardinal":
			o.Type = Cardinal
		case "ordinal":
			o.Type = Ordinal
		}
	}
	if s, ok := str("style"); ok {
		switch s {
		case "decimal":
			o.Style = Decimal
		case "currency":
			o.Style = Currency
		case "percent":
			o.Style = Percent
		}
	}
	if s, ok := str("currency"); ok {
		o.Currency = s
	}
	if s, ok := str("currencyDisplay"); ok {
		switch s {
		case "symbol":
			o.CurrencyDisplay = CurrencySymbol
		case "code":
			o.CurrencyDisplay = CurrencyCode
		case "name":
			o.CurrencyDisplay = CurrencyName
		}
	}
	if s, ok := str("useGrouping"); ok {
		switch s {
		case "false":
			o.UseGrouping = GroupingFalse
		case "always":
			o.UseGrouping = GroupingAlways
		case "min2":
			o.UseGrouping = GroupingMin2
		default:
			o.UseGrouping = GroupingAuto
		}
	}
	if n, ok := num("minimumIntegerDigits"); ok {
		o.MinimumIntegerDigits = &n
	}
	if n, ok := num("minimumFractionDigits"); ok {
		o.MinimumFractionDigits = &n
	}
	if n, ok := num("maximumFractionDigits"); ok {
		o.MaximumFractionDigits = &n
	}
	if n, ok := num("minimumSignificantDigits"); ok {
		o.MinimumSignificantDigits = &n
	}
	if n, ok := num("maximumSignificantDigits"); ok {
		o.MaximumSignificantDigits = &n
	}
}

// Number is a numeric argument, NUMBER()-wrapped value, or the value of a
// NumberLiteral expression.
type Number struct {
	Value   float64
	Options NumberOptions
}

// NewNumber wraps a plain float64 with default options.
func NewNumber(v float64) Number {
	return Number{Value: v}
}

// NewNumberFromLiteral parses an ast.NumberLiteral's raw text. The number
// of fraction digits actually written in the source is significant: "1.0"
// and "1" format identically today but select different default
// minimumFractionDigits, should a downstream formatter care.
func NewNumberFromLiteral(raw string) Number {
	v, _ := strconv.ParseFloat(raw, 64)
	n := Number{Value: v}
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		digits := len(raw) - dot - 1
		n.Options.MinimumFractionDigits = &digits
	}
	return n
}

// Format renders the number using Go's default float formatting. It does
// not apply NumberOptions: turning a Number into locale-correct display
// text is the job of a host application's own formatter, which can read
// Value and Options off the resolved value.
func (n Number) Format() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (Number) isValue() {}

// Matches reports whether a select expression's variant key (either a
// String holding a bare identifier or a Number from a NumberLiteral) picks
// out the selector value v. A Number selector is compared by value against
// a Number key such as `[1]`, and by plural category against a String key
// such as `[one]`. Matches does not rank keys: when several variants match,
// the resolver picks the first one in source order.
func Matches(key Value, v Value, categorize func(Number) PluralCategory) bool {
	switch k := key.(type) {
	case String:
		switch sel := v.(type) {
		case String:
			return k == sel
		case Number:
			if categorize == nil {
				return false
			}
			return string(categorize(sel)) == string(k)
		}
	case Number:
		if sel, ok := v.(Number); ok {
			return k.Value == sel.Value
		}
	}
	return false
}
