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

package ast

import "strings"

// Serialize renders res back to canonical FTL source text: the inverse of
// parsing. It is not guaranteed to reproduce the original byte-for-byte
// (an attached comment's exact blank-line spacing, for instance, collapses
// to one canonical form), but reparsing its output always yields a
// structurally equivalent Resource. Junk entries are omitted, since they
// were never valid FTL to begin with.
func Serialize(res *Resource) string {
	var b strings.Builder
	hasEntries := false
	for _, entry := range res.Body {
		switch e := entry.(type) {
		case *Message:
			serializeMessage(&b, e, hasEntries)
			hasEntries = true
		case *Term:
			serializeTerm(&b, e, hasEntries)
			hasEntries = true
		case *Comment:
			serializeComment(&b, e, hasEntries)
			if e.Level == StandaloneComment {
				// A blank line keeps a reparse from attaching this
				// comment to the entry that follows it.
				b.WriteByte('\n')
			}
			hasEntries = true
		case *Junk:
			continue
		}
	}
	return b.String()
}

func commentPrefix(level CommentLevel) string {
	switch level {
	case GroupComment:
		return "##"
	case ResourceComment:
		return "###"
	default:
		return "#"
	}
}

func serializeComment(b *strings.Builder, c *Comment, hasEntries bool) {
	if hasEntries {
		b.WriteByte('\n')
	}
	prefix := commentPrefix(c.Level)
	for _, line := range c.Lines {
		b.WriteString(prefix)
		if line != "" {
			b.WriteByte(' ')
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
}

func serializeMessage(b *strings.Builder, m *Message, hasEntries bool) {
	if m.Comment != nil {
		serializeComment(b, m.Comment, hasEntries)
	}
	b.WriteString(m.ID.Name)
	b.WriteString(" =")
	if m.Value != nil {
		serializePattern(b, m.Value, 4)
	}
	for _, attr := range m.Attributes {
		serializeAttribute(b, attr)
	}
	b.WriteByte('\n')
}

func serializeTerm(b *strings.Builder, t *Term, hasEntries bool) {
	if t.Comment != nil {
		serializeComment(b, t.Comment, hasEntries)
	}
	b.WriteByte('-')
	b.WriteString(t.ID.Name)
	b.WriteString(" =")
	serializePattern(b, t.Value, 4)
	for _, attr := range t.Attributes {
		serializeAttribute(b, attr)
	}
	b.WriteByte('\n')
}

func serializeAttribute(b *strings.Builder, a *Attribute) {
	b.WriteByte('\n')
	b.WriteString("    .")
	b.WriteString(a.ID.Name)
	b.WriteString(" =")
	serializePattern(b, a.Value, 8)
}

// needsBlockForm reports whether pattern must be written starting on its own
// indented line rather than inline after "=": true for any text element
// that spans multiple lines, or any placeable wrapping a select expression
// (select variants always need their own indented lines).
func needsBlockForm(p *Pattern) bool {
	for _, el := range p.Elements {
		switch e := el.(type) {
		case *TextElement:
			if strings.Contains(e.Value, "\n") {
				return true
			}
		case *Placeable:
			if isSelectExpr(e.Expression) {
				return true
			}
		}
	}
	return false
}

func isSelectExpr(expr Expression) bool {
	switch e := expr.(type) {
	case *SelectExpression:
		return true
	case *PlaceableExpression:
		return isSelectExpr(e.Expression)
	default:
		return false
	}
}

func writeIndent(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(' ')
	}
}

// serializePattern writes pattern either inline (a single leading space
// followed by its elements) or in block form (a newline then every element
// at indent, with each embedded newline in a TextElement re-indented to
// match). indent is also the base indent block-form select variants nest
// under.
func serializePattern(b *strings.Builder, p *Pattern, indent int) {
	if needsBlockForm(p) {
		b.WriteByte('\n')
		writeIndent(b, indent)
	} else {
		b.WriteByte(' ')
	}

	for _, el := range p.Elements {
		switch e := el.(type) {
		case *TextElement:
			lines := strings.Split(e.Value, "\n")
			for i, line := range lines {
				if i > 0 {
					b.WriteByte('\n')
					writeIndent(b, indent)
				}
				b.WriteString(line)
			}
		case *Placeable:
			serializePlaceable(b, e, indent)
		}
	}
}

func serializePlaceable(b *strings.Builder, ph *Placeable, indent int) {
	writePlaceableExpression(b, ph.Expression, indent)
}

// writePlaceableExpression writes the full "{ ... }" of a placeable, whose
// closing brace is handled specially for a select expression (its own
// closing "}" on an indented line doubles as the placeable's).
func writePlaceableExpression(b *strings.Builder, expr Expression, indent int) {
	b.WriteString("{ ")
	if sel, ok := expr.(*SelectExpression); ok {
		serializeSelectBody(b, sel, indent)
		return
	}
	serializeInlineExpression(b, expr.(InlineExpression), indent)
	b.WriteString(" }")
}

func serializeSelectBody(b *strings.Builder, sel *SelectExpression, indent int) {
	serializeInlineExpression(b, sel.Selector, indent)
	b.WriteString(" ->\n")
	variantIndent := indent + 4
	for _, v := range sel.Variants {
		writeIndent(b, variantIndent)
		if v.Default {
			b.WriteByte('*')
		}
		b.WriteByte('[')
		serializeVariantKey(b, v.Key)
		b.WriteByte(']')
		serializePattern(b, v.Value, variantIndent+4)
		b.WriteByte('\n')
	}
	writeIndent(b, indent)
	b.WriteByte('}')
}

func serializeVariantKey(b *strings.Builder, key VariantKey) {
	switch k := key.(type) {
	case *Identifier:
		b.WriteString(k.Name)
	case *NumberLiteral:
		b.WriteString(k.Raw)
	}
}

func serializeInlineExpression(b *strings.Builder, expr InlineExpression, indent int) {
	switch e := expr.(type) {
	case *StringLiteral:
		b.WriteByte('"')
		b.WriteString(e.Raw)
		b.WriteByte('"')
	case *NumberLiteral:
		b.WriteString(e.Raw)
	case *VariableReference:
		b.WriteByte('$')
		b.WriteString(e.ID.Name)
	case *FunctionReference:
		b.WriteString(e.ID.Name)
		if e.Arguments != nil {
			serializeCallArguments(b, e.Arguments, indent)
		}
	case *MessageReference:
		b.WriteString(e.ID.Name)
		if e.Attribute != nil {
			b.WriteByte('.')
			b.WriteString(e.Attribute.Name)
		}
	case *TermReference:
		b.WriteByte('-')
		b.WriteString(e.ID.Name)
		if e.Attribute != nil {
			b.WriteByte('.')
			b.WriteString(e.Attribute.Name)
		}
		if e.Arguments != nil {
			serializeCallArguments(b, e.Arguments, indent)
		}
	case *PlaceableExpression:
		writePlaceableExpression(b, e.Expression, indent)
	}
}

func serializeCallArguments(b *strings.Builder, args *CallArguments, indent int) {
	b.WriteByte('(')
	written := false
	for _, p := range args.Positional {
		if written {
			b.WriteString(", ")
		}
		serializeInlineExpression(b, p, indent)
		written = true
	}
	for _, n := range args.Named {
		if written {
			b.WriteString(", ")
		}
		b.WriteString(n.Name.Name)
		b.WriteString(": ")
		serializeInlineExpression(b, n.Value, indent)
		written = true
	}
	b.WriteByte(')')
}
