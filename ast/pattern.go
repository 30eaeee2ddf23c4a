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

// Pattern is the value of a Message, Term, or Attribute: a sequence of text
// runs interleaved with placeables. A single-element Pattern whose sole
// element is a TextElement is the common case and is handled as a fast path
// by the resolver.
type Pattern struct {
	Elements []PatternElement
	Span     Span
}

func (n *Pattern) Pos() Span { return n.Span }

// TextElement is a literal run of pattern text, already dedented and with
// its trailing blank lines trimmed by the parser. It does not undergo
// escape processing: only the contents of a StringLiteral do.
type TextElement struct {
	Value string
	Span  Span
}

func (n *TextElement) Pos() Span         { return n.Span }
func (n *TextElement) patternElementNode() {}

// Placeable is a `{ ... }` embedded in a Pattern.
type Placeable struct {
	Expression Expression
	Span       Span
}

func (n *Placeable) Pos() Span          { return n.Span }
func (n *Placeable) patternElementNode() {}
