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

// SelectExpression is `{ $sel -> [k] ... *[k] ... }`. Exactly one variant
// must have Default set; the parser enforces this and records
// MultipleDefaultVariants / MissingDefaultVariant diagnostics rather than
// leaving the invariant to callers.
type SelectExpression struct {
	Selector InlineExpression
	Variants []*Variant
	Span     Span
}

func (n *SelectExpression) Pos() Span        { return n.Span }
func (n *SelectExpression) expressionNode()  {}

// Variant is one `[key] pattern` or `*[key] pattern` arm of a
// SelectExpression.
type Variant struct {
	Key     VariantKey
	Value   *Pattern
	Default bool
	Span    Span
}

func (n *Variant) Pos() Span { return n.Span }

// StringLiteral is a `"..."` inline expression. Raw holds the literal text
// between the quotes, with escape sequences not yet decoded; call Unescape
// on it to get the runtime string value.
type StringLiteral struct {
	Raw  string
	Span Span
}

func (n *StringLiteral) Pos() Span               { return n.Span }
func (n *StringLiteral) expressionNode()         {}
func (n *StringLiteral) inlineExpressionNode()   {}

// NumberLiteral is a bare numeric inline expression, e.g. `5`, `-3.2`, or a
// variant key such as `[1]`. Raw preserves the exact source text (including
// sign and trailing zeros) because the number of fraction digits written in
// the source is itself meaningful: "1.0" and "1" select different default
// minimumFractionDigits.
type NumberLiteral struct {
	Raw  string
	Span Span
}

func (n *NumberLiteral) Pos() Span             { return n.Span }
func (n *NumberLiteral) expressionNode()       {}
func (n *NumberLiteral) inlineExpressionNode() {}
func (n *NumberLiteral) variantKeyNode()       {}

// FunctionReference is a call to an uppercase-leading function registered
// with the Bundle, e.g. `NUMBER($count)`.
type FunctionReference struct {
	ID        *Identifier
	Arguments *CallArguments
	Span      Span
}

func (n *FunctionReference) Pos() Span             { return n.Span }
func (n *FunctionReference) expressionNode()       {}
func (n *FunctionReference) inlineExpressionNode() {}

// MessageReference is a reference to another message, optionally scoped to
// one of its attributes: `{ other-id }` or `{ other-id.attr }`.
type MessageReference struct {
	ID        *Identifier
	Attribute *Identifier
	Span      Span
}

func (n *MessageReference) Pos() Span             { return n.Span }
func (n *MessageReference) expressionNode()       {}
func (n *MessageReference) inlineExpressionNode() {}

// TermReference is a reference to a term, optionally scoped to one of its
// attributes, and optionally supplying call arguments that become that
// term's local variables while its pattern resolves: `{ -id }`,
// `{ -id.attr }`, `{ -id(arg: "x") }`.
type TermReference struct {
	ID        *Identifier
	Attribute *Identifier
	Arguments *CallArguments
	Span      Span
}

func (n *TermReference) Pos() Span             { return n.Span }
func (n *TermReference) expressionNode()       {}
func (n *TermReference) inlineExpressionNode() {}

// VariableReference is `$id`, resolved against the caller-supplied
// arguments, or the enclosing term's local arguments when resolution is
// currently inside a TermReference's pattern.
type VariableReference struct {
	ID   *Identifier
	Span Span
}

func (n *VariableReference) Pos() Span             { return n.Span }
func (n *VariableReference) expressionNode()       {}
func (n *VariableReference) inlineExpressionNode() {}

// PlaceableExpression is a placeable nested directly inside another
// placeable's expression position, e.g. the outer braces of
// `{ { -term } }`. It lets a Placeable's Expression be, itself, wholly
// another Placeable rather than one of the other inline expression kinds.
type PlaceableExpression struct {
	Expression Expression
	Span       Span
}

func (n *PlaceableExpression) Pos() Span             { return n.Span }
func (n *PlaceableExpression) expressionNode()       {}
func (n *PlaceableExpression) inlineExpressionNode() {}

// CallArguments is the parenthesized argument list of a FunctionReference
// or TermReference: zero or more positional InlineExpressions followed by
// zero or more named arguments.
type CallArguments struct {
	Positional []InlineExpression
	Named      []*NamedArgument
	Span       Span
}

func (n *CallArguments) Pos() Span { return n.Span }

// NamedArgument is a `name: value` entry in a CallArguments list. Value can
// be any InlineExpression; the parser does not restrict it to literals.
type NamedArgument struct {
	Name  *Identifier
	Value InlineExpression
	Span  Span
}

func (n *NamedArgument) Pos() Span { return n.Span }
