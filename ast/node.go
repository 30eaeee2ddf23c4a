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

// Package ast defines the abstract syntax tree produced by parsing an FTL
// resource, along with the byte cursor the parser drives it with.
//
// Every node holds a Span identifying the byte range it was parsed from in
// the owning Resource's source. Text carried by a node (identifier names,
// pattern text, string literal contents) is stored as a plain Go string:
// because slicing a Go string never copies its backing array, a node field
// set from Cursor.Slice is already a zero-copy borrow of the source, and the
// same field works unchanged for nodes built by hand (tests, synthetic
// resources) from owned strings. There is no need for a separate
// borrowed/owned node instantiation.
package ast

// Span is a half-open byte range [Start, End) into the source of the
// Resource a node belongs to.
type Span struct {
	Start int
	End   int
}

// Node is implemented by every AST type. Pos reports the byte span the node
// was parsed from.
type Node interface {
	Pos() Span
}

// Entry is a top-level member of a Resource: a Message, a Term, a standalone
// Comment, or a Junk entry produced by error recovery.
type Entry interface {
	Node
	entryNode()
}

// PatternElement is one element of a Pattern: either literal text or a
// placeable expression.
type PatternElement interface {
	Node
	patternElementNode()
}

// Expression is anything that can appear as the expression inside a
// Placeable: either an InlineExpression, or a SelectExpression (select
// expressions cannot nest inside another select's selector or variants
// without first passing through a Placeable).
type Expression interface {
	Node
	expressionNode()
}

// InlineExpression is the subset of Expression that can also appear as a
// call argument, a select expression's selector, or a nested placeable.
type InlineExpression interface {
	Expression
	inlineExpressionNode()
}

// VariantKey is either an Identifier or a NumberLiteral used to key a
// variant of a select expression.
type VariantKey interface {
	Node
	variantKeyNode()
}
