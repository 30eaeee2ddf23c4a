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

import "fmt"

// ErrorKind enumerates every distinct malformed-syntax condition the parser
// can recognize while parsing a single entry. Encountering one never aborts
// parsing the whole resource: it only fails the entry currently in
// progress, which the caller then reports as Junk.
type ErrorKind int

const (
	ExpectedEntry ErrorKind = iota
	ExpectedToken
	ExpectedCharRange
	ExpectedMessageField
	ExpectedTermField
	ForbiddenWhitespace
	ForbiddenCallee
	ForbiddenKey
	MissingDefaultVariant
	MissingVariants
	MissingValue
	MissingVariantKey
	MissingLiteral
	MultipleDefaultVariants
	MessageReferenceAsSelector
	TermReferenceAsSelector
	MessageAttributeAsSelector
	TermAttributeAsPlaceable
	UnterminatedStringExpression
	PositionalArgumentFollowsNamed
	DuplicatedNamedArgument
	ForbiddenVariantAccessor
	UnknownEscapeSequence
	InvalidUnicodeEscapeSequence
	UnbalancedClosingBrace
	ExpectedInlineExpression
	ExpectedSimpleExpressionAsSelector
)

// Error is a single diagnostic produced while parsing one entry. Pos is the
// byte offset the error was detected at; Slice is the wider byte range of
// the whole entry that failed to parse (the same range recorded as Junk),
// set by Parse once it has skipped to the next entry start.
type Error struct {
	Kind  ErrorKind
	Pos   int
	Slice [2]int

	// Arg carries the ErrorKind-specific payload used to render the
	// message: the expected character for ExpectedToken, the char-range
	// label for ExpectedCharRange, the entry id for ExpectedMessageField /
	// ExpectedTermField, the duplicated argument name for
	// DuplicatedNamedArgument, and the offending sequence for
	// UnknownEscapeSequence / InvalidUnicodeEscapeSequence.
	Arg string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ExpectedEntry:
		return "expected an entry start"
	case ExpectedToken:
		return fmt.Sprintf("expected token %q", e.Arg)
	case ExpectedCharRange:
		return fmt.Sprintf("expected one of %q", e.Arg)
	case ExpectedMessageField:
		return fmt.Sprintf("expected a message field for %q", e.Arg)
	case ExpectedTermField:
		return fmt.Sprintf("expected a term field for %q", e.Arg)
	case ForbiddenWhitespace:
		return "whitespace is not allowed here"
	case ForbiddenCallee:
		return "the callee has to be a simple, upper-case identifier"
	case ForbiddenKey:
		return "the key has to be a simple identifier"
	case MissingDefaultVariant:
		return "expected one of the variants to be marked as default (*)"
	case MissingVariants:
		return `expected at least one variant after "->"`
	case MissingValue:
		return "expected a value"
	case MissingVariantKey:
		return "expected a variant key"
	case MissingLiteral:
		return "expected a literal"
	case MultipleDefaultVariants:
		return "only one variant can be marked as default (*)"
	case MessageReferenceAsSelector:
		return "message references cannot be used as a selector"
	case TermReferenceAsSelector:
		return "term references cannot be used as a selector without an attribute"
	case MessageAttributeAsSelector:
		return "message attributes cannot be used as a selector"
	case TermAttributeAsPlaceable:
		return "term attributes cannot be used as placeables"
	case UnterminatedStringExpression:
		return "unterminated string expression"
	case PositionalArgumentFollowsNamed:
		return "positional arguments must not follow named arguments"
	case DuplicatedNamedArgument:
		return fmt.Sprintf("the argument named %q appears twice", e.Arg)
	case ForbiddenVariantAccessor:
		return "variants cannot be accessed using the reference syntax"
	case UnknownEscapeSequence:
		return fmt.Sprintf("unknown escape sequence %q", e.Arg)
	case InvalidUnicodeEscapeSequence:
		return fmt.Sprintf("invalid Unicode escape sequence %q", e.Arg)
	case UnbalancedClosingBrace:
		return "unbalanced closing brace"
	case ExpectedInlineExpression:
		return "expected an inline expression"
	case ExpectedSimpleExpressionAsSelector:
		return "expected a simple expression as selector"
	default:
		return "unknown parse error"
	}
}

func newError(kind ErrorKind, pos int) *Error {
	return &Error{Kind: kind, Pos: pos}
}

func (e *Error) withArg(arg string) *Error {
	e.Arg = arg
	return e
}
