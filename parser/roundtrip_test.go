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

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/go-fluent/ftl/ast"
)

// Parsing the same source twice must produce structurally identical ASTs:
// the parser has no hidden state that could make it nondeterministic.
func TestParseIsDeterministic(t *testing.T) {
	sources := []string{
		"hello = Hello, world!\n",
		"greeting = Hi { $name }!\n    .tooltip = Says hi\n",
		"-brand = Acme\nwelcome = Welcome to { -brand }.\n",
		"count = { $n ->\n    [one] one item\n   *[other] { $n } items\n}\n",
		"# standalone\nfoo = Foo\n\n## group\nbar = Bar\n",
		"broken =\n!!! junk line\nrecovered = Fine\n",
	}

	for _, src := range sources {
		first, firstErrs := Parse(src)
		second, secondErrs := Parse(src)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("re-parsing %q produced a different AST (-first +second):\n%s", src, diff)
		}
		require.Equal(t, len(firstErrs), len(secondErrs))
		for i := range firstErrs {
			require.Equal(t, firstErrs[i].Kind, secondErrs[i].Kind)
			require.Equal(t, firstErrs[i].Pos, secondErrs[i].Pos)
		}
	}
}

// structuralDiffOpts ignores the two things a round trip through Serialize
// is expected to change: every node's byte Span (the serialized text has
// different offsets than the original source) and Resource.Source itself
// (the serialized text, not the original string).
var structuralDiffOpts = cmp.Options{
	cmpopts.IgnoreFields(ast.Resource{}, "Source"),
	cmp.Comparer(func(ast.Span, ast.Span) bool { return true }),
}

// Serializing a parsed Resource back to FTL text and reparsing it must
// yield a structurally equivalent AST: canonical serialization is lossy
// about exact source formatting (blank-line spacing, inline-vs-block
// pattern layout) but never about meaning.
func TestSerializeThenReparseIsStructurallyEqual(t *testing.T) {
	sources := []string{
		"hello = Hello, world!\n",
		"greeting = Hi { $name }!\n    .tooltip = Says hi\n",
		"-brand = Acme\nwelcome = Welcome to { -brand }.\n",
		"count = { $n ->\n    [one] one item\n   *[other] { $n } items\n}\n",
		"# standalone\nfoo = Foo\n\n## group\nbar = Bar\n",
		"foo = Foo Value\n    .attr-a = Foo Attr A\n    .attr-b = Foo Attr B\n",
		"greet = Hello { $name }\n    Welcome, { $name }!\n",
		`msg = { -brand(case: "accusative") }` + "\n",
	}

	for _, src := range sources {
		original, errs := Parse(src)
		require.Emptyf(t, errs, "fixture %q must already be valid FTL", src)

		serialized := ast.Serialize(original)
		reparsed, errs := Parse(serialized)
		require.Emptyf(t, errs, "serialized form %q of %q must reparse cleanly", serialized, src)

		if diff := cmp.Diff(original, reparsed, structuralDiffOpts); diff != "" {
			t.Fatalf("serializing then reparsing %q produced a different AST (-original +reparsed):\n%s", src, diff)
		}
	}
}
