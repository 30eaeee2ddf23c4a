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
	"log/slog"
	"strings"

	"github.com/go-fluent/ftl/ast"
)

const (
	fsi = '⁨' // first strong isolate
	pdi = '⁩' // pop directional isolate
)

// FormatPattern resolves pattern to its formatted text using args as the
// caller-supplied variables, returning every diagnostic recorded along the
// way. A single-element, all-text pattern is returned directly without
// allocating a scope or builder, since it cannot reference anything.
func FormatPattern(b *Bundle, pattern *ast.Pattern, args map[string]Value) (string, []FluentError) {
	if len(pattern.Elements) == 1 {
		if te, ok := pattern.Elements[0].(*ast.TextElement); ok {
			return te.Value, nil
		}
	}
	s := newScope(b, args)
	var out strings.Builder
	writePattern(&out, pattern, s)
	return out.String(), s.errors
}

func writePattern(b *strings.Builder, pattern *ast.Pattern, s *scope) {
	multiElement := len(pattern.Elements) > 1
	for _, el := range pattern.Elements {
		if s.dirty {
			b.WriteString("???")
			return
		}
		switch e := el.(type) {
		case *ast.TextElement:
			b.WriteString(e.Value)
		case *ast.Placeable:
			writePlaceable(b, e, multiElement, s)
		}
	}
}

func writePlaceable(b *strings.Builder, ph *ast.Placeable, multiElement bool, s *scope) {
	if !s.countPlaceable() {
		b.WriteString("???")
		return
	}
	isolate := s.bundle.UseIsolating && multiElement && needsIsolation(ph.Expression)
	if isolate {
		b.WriteRune(fsi)
	}
	writeExpression(b, ph.Expression, s)
	if isolate {
		b.WriteRune(pdi)
	}
}

// needsIsolation reports whether expr's written form should be wrapped in
// bidi isolation characters. Bare message/term references and string
// literals are excluded because they are expected to already carry
// correct directionality for the surrounding text; everything else
// (numbers, variables, function calls, nested placeables, and selects) is
// wrapped so that its directionality can't bleed into the pattern.
func needsIsolation(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.MessageReference, *ast.TermReference, *ast.StringLiteral:
		return false
	default:
		return true
	}
}

func writeExpression(b *strings.Builder, expr ast.Expression, s *scope) {
	switch e := expr.(type) {
	case *ast.SelectExpression:
		writeSelect(b, e, s)
	case ast.InlineExpression:
		writeInlineExpression(b, e, s)
	}
}

func writeSelect(b *strings.Builder, sel *ast.SelectExpression, s *scope) {
	selVal := resolveInlineExpressionValue(sel.Selector, s)

	var def *ast.Variant
	for _, v := range sel.Variants {
		if v.Default {
			def = v
		}
		if matchesVariant(v, selVal, s) {
			writePattern(b, v.Value, s)
			return
		}
	}
	if def != nil {
		writePattern(b, def.Value, s)
		return
	}
	// A well-formed select expression always has a default variant; the
	// parser refuses to build one without one. Getting here means an AST
	// was constructed by hand without respecting that invariant.
	slog.Error("bug: select expression has no default variant", "variants", len(sel.Variants))
	s.addError(&MissingDefaultError{})
	b.WriteString("???")
}

func matchesVariant(v *ast.Variant, selVal Value, s *scope) bool {
	var keyVal Value
	switch k := v.Key.(type) {
	case *ast.Identifier:
		keyVal = String(k.Name)
	case *ast.NumberLiteral:
		keyVal = NewNumberFromLiteral(k.Raw)
	default:
		return false
	}
	return Matches(keyVal, selVal, func(n Number) PluralCategory {
		return s.bundle.categorize(n, n.Options.Type)
	})
}

func writeInlineExpression(b *strings.Builder, expr ast.InlineExpression, s *scope) {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		b.WriteString(ast.Unescape(e.Raw))
	case *ast.NumberLiteral:
		b.WriteString(NewNumberFromLiteral(e.Raw).Format())
	case *ast.VariableReference:
		v, ok := s.lookupVariable(e.ID.Name)
		if !ok {
			if s.variableMissIsError() {
				s.addError(&ReferenceError{Label: referenceLabel(e)})
			}
			b.WriteString(referenceLabel(e))
			return
		}
		b.WriteString(v.Format())
	case *ast.FunctionReference:
		v := resolveFunctionCall(e, s)
		if _, ok := v.(ErrorValue); ok {
			b.WriteString("{" + referenceLabel(e) + "}")
			return
		}
		b.WriteString(v.Format())
	case *ast.MessageReference:
		writeMessageReference(b, e, s)
	case *ast.TermReference:
		writeTermReference(b, e, s)
	case *ast.PlaceableExpression:
		writeExpression(b, e.Expression, s)
	}
}

// resolveInlineExpressionValue evaluates expr to a Value rather than
// writing it, for contexts that need the value itself: a select
// expression's selector, and call arguments.
func resolveInlineExpressionValue(expr ast.InlineExpression, s *scope) Value {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return String(ast.Unescape(e.Raw))
	case *ast.NumberLiteral:
		return NewNumberFromLiteral(e.Raw)
	case *ast.VariableReference:
		if v, ok := s.lookupVariable(e.ID.Name); ok {
			return v
		}
		if s.variableMissIsError() {
			s.addError(&ReferenceError{Label: referenceLabel(e)})
		}
		return NoneValue{}
	case *ast.FunctionReference:
		return resolveFunctionCall(e, s)
	default:
		var b strings.Builder
		writeInlineExpression(&b, e, s)
		return String(b.String())
	}
}

func resolveFunctionCall(fr *ast.FunctionReference, s *scope) Value {
	fn, ok := s.bundle.functions[fr.ID.Name]
	if !ok {
		s.addError(&ReferenceError{Label: referenceLabel(fr)})
		return ErrorValue{}
	}
	positional, named := resolveCallArguments(fr.Arguments, s)
	result := fn(positional, named)
	if _, ok := result.(ErrorValue); ok {
		s.addError(&ReferenceError{Label: referenceLabel(fr)})
	}
	return result
}

func resolveCallArguments(args *ast.CallArguments, s *scope) ([]Value, map[string]Value) {
	if args == nil {
		return nil, nil
	}
	positional := make([]Value, 0, len(args.Positional))
	for _, p := range args.Positional {
		positional = append(positional, resolveInlineExpressionValue(p, s))
	}
	var named map[string]Value
	if len(args.Named) > 0 {
		named = make(map[string]Value, len(args.Named))
		for _, n := range args.Named {
			named[n.Name.Name] = resolveInlineExpressionValue(n.Value, s)
		}
	}
	return positional, named
}

func writeMessageReference(b *strings.Builder, ref *ast.MessageReference, s *scope) {
	msg, ok := s.bundle.getMessage(ref.ID.Name)
	if !ok {
		s.addError(&ReferenceError{Label: referenceLabel(ref)})
		b.WriteString("{" + referenceLabel(ref) + "}")
		return
	}

	if ref.Attribute != nil {
		for _, attr := range msg.Attributes {
			if attr.ID.Name == ref.Attribute.Name {
				writeTracked(b, attr.Value, referenceLabel(ref), s)
				return
			}
		}
		s.addError(&ReferenceError{Label: referenceLabel(ref)})
		b.WriteString("{" + referenceLabel(ref) + "}")
		return
	}

	if msg.Value == nil {
		s.addError(&NoValueError{ID: msg.ID.Name})
		b.WriteString("{" + referenceLabel(ref) + "}")
		return
	}
	writeTracked(b, msg.Value, referenceLabel(ref), s)
}

func writeTermReference(b *strings.Builder, ref *ast.TermReference, s *scope) {
	term, ok := s.bundle.getTerm(ref.ID.Name)
	if !ok {
		s.addError(&ReferenceError{Label: referenceLabel(ref)})
		b.WriteString("{" + referenceLabel(ref) + "}")
		return
	}

	_, named := resolveCallArguments(ref.Arguments, s)
	if named == nil {
		// localArgs being non-nil is what signals "resolution is inside a
		// term's body" to scope.lookupVariable; a term called with no
		// named arguments still needs that signal set.
		named = map[string]Value{}
	}
	prevLocal := s.localArgs
	s.localArgs = named
	defer func() { s.localArgs = prevLocal }()

	if ref.Attribute != nil {
		for _, attr := range term.Attributes {
			if attr.ID.Name == ref.Attribute.Name {
				writeTracked(b, attr.Value, referenceLabel(ref), s)
				return
			}
		}
		s.addError(&ReferenceError{Label: referenceLabel(ref)})
		b.WriteString("{" + referenceLabel(ref) + "}")
		return
	}

	writeTracked(b, term.Value, referenceLabel(ref), s)
}

func writeTracked(b *strings.Builder, pattern *ast.Pattern, label string, s *scope) {
	out := s.track(pattern, label, func() string {
		var inner strings.Builder
		writePattern(&inner, pattern, s)
		return inner.String()
	})
	b.WriteString(out)
}

// referenceLabel renders expr the way it would appear textually in source,
// for use both in ReferenceError messages and in the "{label}"-shaped
// placeholder text written in its place.
func referenceLabel(expr ast.InlineExpression) string {
	switch e := expr.(type) {
	case *ast.MessageReference:
		if e.Attribute != nil {
			return e.ID.Name + "." + e.Attribute.Name
		}
		return e.ID.Name
	case *ast.TermReference:
		if e.Attribute != nil {
			return "-" + e.ID.Name + "." + e.Attribute.Name
		}
		return "-" + e.ID.Name
	case *ast.FunctionReference:
		return e.ID.Name + "()"
	case *ast.VariableReference:
		return "$" + e.ID.Name
	default:
		return "???"
	}
}
