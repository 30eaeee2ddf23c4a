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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/go-fluent/ftl/parser"
)

func newTestBundle(t *testing.T, locale string, source string) *Bundle {
	t.Helper()
	tag := language.Make(locale)
	b := NewBundle(tag)
	res, perrs := parser.Parse(source)
	require.Empty(t, perrs, "source must parse cleanly")
	berrs := b.AddResource(res)
	require.Empty(t, berrs)
	return b
}

func TestFormatSimpleMessage(t *testing.T) {
	b := newTestBundle(t, "en-US", "hello-world = Hello, World!\n")
	out, errs, ok := b.FormatMessage("hello-world", nil)
	require.True(t, ok)
	require.Empty(t, errs)
	require.Equal(t, "Hello, World!", out)
}

func TestFormatVariableIsIsolated(t *testing.T) {
	b := newTestBundle(t, "en-US", "intro = Welcome, { $name }.\n")
	out, errs, ok := b.FormatMessage("intro", map[string]Value{"name": String("John")})
	require.True(t, ok)
	require.Empty(t, errs)
	require.Equal(t, "Welcome, ⁨John⁩.", out)
}

func TestFormatMessageReferenceIsNotIsolated(t *testing.T) {
	source := "foo = Foo\nfoobar = { foo } Bar\nbazbar = { baz } Bar\n"
	b := newTestBundle(t, "en-US", source)

	out, errs, ok := b.FormatMessage("foobar", nil)
	require.True(t, ok)
	require.Empty(t, errs)
	require.Equal(t, "Foo Bar", out)

	out, errs, ok = b.FormatMessage("bazbar", nil)
	require.True(t, ok)
	require.Equal(t, "{baz} Bar", out)
	require.Len(t, errs, 1)
	refErr, isRef := errs[0].(*ReferenceError)
	require.True(t, isRef)
	require.Equal(t, "baz", refErr.Label)
}

func TestFormatPluralSelectorArabic(t *testing.T) {
	source := "count = { $num ->\n    [one] one\n    [two] two\n    [few] few\n    [many] many\n   *[other] other\n}\n"
	b := newTestBundle(t, "ars", source)
	out, errs, ok := b.FormatMessage("count", map[string]Value{"num": NewNumber(11)})
	require.True(t, ok)
	require.Empty(t, errs)
	require.Equal(t, "many", out)
}

func TestFormatCyclicReferenceTerminates(t *testing.T) {
	source := "foo = Foo { bar }\nbar = { foo } Bar\n"
	b := newTestBundle(t, "en-US", source)
	out, errs, ok := b.FormatMessage("foo", nil)
	require.True(t, ok)
	require.Contains(t, out, "Foo")
	require.Contains(t, out, "Bar")
	require.True(t, strings.Contains(out, "{foo}") || strings.Contains(out, "{bar}"))

	var sawCyclic bool
	for _, e := range errs {
		if _, ok := e.(*CyclicReferenceError); ok {
			sawCyclic = true
		}
	}
	require.True(t, sawCyclic)
}

func TestFormatTermWithVariantSelector(t *testing.T) {
	source := "-bar = { $gender ->\n   *[nominative] Bar\n    [genitive] Bar's\n}\n" +
		`use-bar-genitive = { -bar(gender: "genitive") }` + "\n"
	b := newTestBundle(t, "en-US", source)
	out, errs, ok := b.FormatMessage("use-bar-genitive", nil)
	require.True(t, ok)
	require.Empty(t, errs)
	require.Equal(t, "Bar's", out)
}

func TestFormatTermDefaultVariant(t *testing.T) {
	source := "-bar = { $gender ->\n   *[nominative] Bar\n    [genitive] Bar's\n}\n" +
		"use-bar = { -bar }\n"
	b := newTestBundle(t, "en-US", source)
	out, errs, ok := b.FormatMessage("use-bar", nil)
	require.True(t, ok)
	require.Empty(t, errs)
	require.Equal(t, "Bar", out)
}

func TestFormatTooManyPlaceablesIsBounded(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 120; i++ {
		b.WriteString("{ \"x\" } ")
	}
	source := "blowup = " + b.String() + "\n"
	bundle := newTestBundle(t, "en-US", source)

	out, errs, ok := bundle.FormatMessage("blowup", nil)
	require.True(t, ok)
	require.Less(t, len(out), len(source)*2)

	var sawTooMany bool
	for _, e := range errs {
		if _, ok := e.(*TooManyPlaceablesError); ok {
			sawTooMany = true
		}
	}
	require.True(t, sawTooMany)
}

func TestFormatStringLiteralNeverIsolated(t *testing.T) {
	source := `greeting = Hi { "there" } friend` + "\n"
	b := newTestBundle(t, "en-US", source)
	out, errs, ok := b.FormatMessage("greeting", nil)
	require.True(t, ok)
	require.Empty(t, errs)
	require.NotContains(t, out, "⁨")
	require.NotContains(t, out, "⁩")
	require.Equal(t, "Hi there friend", out)
}

func TestFormatMessageAttribute(t *testing.T) {
	source := "login-button = Log in\n    .aria-label = Log into your account\n"
	b := newTestBundle(t, "en-US", source)
	out, errs, ok := b.FormatAttribute("login-button", "aria-label", nil)
	require.True(t, ok)
	require.Empty(t, errs)
	require.Equal(t, "Log into your account", out)
}

func TestFormatMissingVariableReportsReference(t *testing.T) {
	source := "intro = Welcome, { $name }.\n"
	b := newTestBundle(t, "en-US", source)
	out, errs, ok := b.FormatMessage("intro", nil)
	require.True(t, ok)
	require.Len(t, errs, 1)
	_, isRef := errs[0].(*ReferenceError)
	require.True(t, isRef)
	require.Contains(t, out, "$name")
}

func TestFormatTermLocalArgumentMissIsNotAnError(t *testing.T) {
	source := "-greeting = Hello { $name }\nuses-greeting = { -greeting }\n"
	b := newTestBundle(t, "en-US", source)
	out, errs, ok := b.FormatMessage("uses-greeting", nil)
	require.True(t, ok)
	require.Empty(t, errs)
	require.Contains(t, out, "$name")
}

func TestFormatUnknownFunctionIsReference(t *testing.T) {
	source := "msg = { UNKNOWN($x) }\n"
	b := newTestBundle(t, "en-US", source)
	out, errs, ok := b.FormatMessage("msg", map[string]Value{"x": NewNumber(1)})
	require.True(t, ok)
	require.Equal(t, "{UNKNOWN()}", out)
	require.Len(t, errs, 1)
}

func TestFormatRegisteredFunction(t *testing.T) {
	source := "msg = Name: { UPPER($name) }\n"
	b := newTestBundle(t, "en-US", source)
	b.AddFunction("UPPER", func(positional []Value, named map[string]Value) Value {
		if len(positional) != 1 {
			return ErrorValue{}
		}
		s, ok := positional[0].(String)
		if !ok {
			return ErrorValue{}
		}
		return String(strings.ToUpper(string(s)))
	})
	out, errs, ok := b.FormatMessage("msg", map[string]Value{"name": String("john")})
	require.True(t, ok)
	require.Empty(t, errs)
	require.Equal(t, "Name: ⁨JOHN⁩", out)
}
