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

import "fmt"

// OverridingError is reported by Bundle.AddResource when an incoming
// resource declares a message or term id that a previously added resource
// already owns. The first registration wins; the later one is simply
// skipped rather than replacing it.
type OverridingError struct {
	Kind EntryKind
	ID   string
}

func (e *OverridingError) Error() string {
	return fmt.Sprintf("%s %q is overriding an existing one", e.Kind, e.ID)
}

func (*OverridingError) isFluentError() {}

// EntryKind distinguishes a Message from a Term for diagnostics that need
// to name which kind of entry they're talking about.
type EntryKind int

const (
	MessageKind EntryKind = iota
	TermKind
)

func (k EntryKind) String() string {
	if k == TermKind {
		return "term"
	}
	return "message"
}

// FluentError is implemented by every error the resolver or Bundle can
// produce. Resolving a pattern never stops at the first error: every
// FluentError encountered is collected and returned alongside the best
// output the resolver could still produce.
type FluentError interface {
	error
	isFluentError()
}

// ReferenceError is recorded when a placeable refers to a message, term,
// attribute, or variable that does not exist, or invokes a function that
// was never registered with the Bundle. Label is the fully formatted
// reference text (e.g. "unknown-msg" or "$unknown-var") that also becomes
// the placeholder text written in the pattern's output.
type ReferenceError struct {
	Label string
}

func (e *ReferenceError) Error() string { return fmt.Sprintf("unknown reference: %s", e.Label) }
func (*ReferenceError) isFluentError()  {}

// CyclicReferenceError is recorded when resolving a pattern would revisit a
// pattern already on the current resolution stack.
type CyclicReferenceError struct{}

func (e *CyclicReferenceError) Error() string { return "cyclic reference detected" }
func (*CyclicReferenceError) isFluentError()  {}

// TooManyPlaceablesError is recorded once a single top-level Format call
// resolves more than maxPlaceables placeables, as a defense against
// quadratic blowup from deeply nested references.
type TooManyPlaceablesError struct{}

func (e *TooManyPlaceablesError) Error() string { return "too many placeables to write" }
func (*TooManyPlaceablesError) isFluentError()  {}

// MissingDefaultError is recorded when a select expression has no variant
// matching the selector and, contrary to the parser's own invariant, no
// variant marked as default either. A well-formed AST can't produce this;
// seeing it means an AST was built by hand (e.g. in a test) without
// respecting MissingDefaultVariant.
type MissingDefaultError struct{}

func (e *MissingDefaultError) Error() string { return "select expression has no default variant" }
func (*MissingDefaultError) isFluentError()  {}

// NoValueError is recorded when a message or term reference resolves an
// entry that has no value pattern (a message consisting only of
// attributes, referenced without naming one of them).
type NoValueError struct {
	ID string
}

func (e *NoValueError) Error() string { return fmt.Sprintf("message %q has no value", e.ID) }
func (*NoValueError) isFluentError()  {}
