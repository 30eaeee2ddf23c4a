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

// Resource is the root of a parsed FTL file: an ordered list of entries.
// Parsing an FTL resource never fails outright; unparseable spans become
// Junk entries alongside whatever Message and Term entries were recognized
// around them.
type Resource struct {
	Source string
	Body   []Entry
}

// CommentLevel distinguishes the three comment forms by how many leading
// '#' characters introduce each of their lines.
type CommentLevel int

const (
	// StandaloneComment is a single '#' comment. When it immediately
	// precedes a Message or Term with no blank line in between, the parser
	// attaches it to that entry's Comment field instead of emitting it as
	// its own Entry.
	StandaloneComment CommentLevel = iota + 1
	// GroupComment is a '##' comment, documenting the entries that follow
	// it until the next GroupComment or ResourceComment.
	GroupComment
	// ResourceComment is a '###' comment, documenting the whole resource.
	ResourceComment
)

// Comment is one or more consecutive same-level comment lines. Lines is one
// string per source line, with the leading "#"/"##"/"###" and the single
// space that must follow it already stripped; it is not newline-joined,
// since a consumer that wants the original layout can join with "\n" itself.
type Comment struct {
	Level CommentLevel
	Lines []string
	Span  Span
}

func (n *Comment) Pos() Span   { return n.Span }
func (n *Comment) entryNode()  {}

// Message is a top-level `id = ...` entry. Value is nil if the message has
// no pattern; it then has at least one attribute. A message with neither a
// pattern nor attributes is an ExpectedMessageField parse error, and its
// source span is recorded as Junk instead of a Message.
type Message struct {
	ID         *Identifier
	Value      *Pattern
	Attributes []*Attribute
	Comment    *Comment
	Span       Span
}

func (n *Message) Pos() Span  { return n.Span }
func (n *Message) entryNode() {}

// Term is a top-level `-id = ...` entry. Unlike Message, Value is mandatory:
// a term with no pattern is a parse error.
type Term struct {
	ID         *Identifier
	Value      *Pattern
	Attributes []*Attribute
	Comment    *Comment
	Span       Span
}

func (n *Term) Pos() Span  { return n.Span }
func (n *Term) entryNode() {}

// Attribute is a `.id = ...` member of a Message or Term.
type Attribute struct {
	ID    *Identifier
	Value *Pattern
	Span  Span
}

func (n *Attribute) Pos() Span { return n.Span }

// Junk is a span of source the parser could not make sense of as an entry.
// It carries the diagnostics produced while trying to parse it, so that a
// caller can report them without the resource as a whole failing to parse.
type Junk struct {
	Content     string
	Annotations []error
	Span        Span
}

func (n *Junk) Pos() Span  { return n.Span }
func (n *Junk) entryNode() {}
