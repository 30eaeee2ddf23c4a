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

import "github.com/go-fluent/ftl/ast"

// maxPlaceables bounds how many placeables a single Format call will write
// before giving up, as a defense against the "billion laughs" style
// quadratic blowup a deeply self-referential set of messages can cause.
const maxPlaceables = 100

// scope carries all of the state a single Format call threads through its
// recursive descent over a pattern: the caller-supplied arguments, the
// term-local arguments currently in effect (if resolution is inside a
// TermReference's body), the stack of patterns already being resolved (for
// cycle detection), and the running placeable count and diagnostics.
//
// A pattern is identified on the travelled stack by its pointer identity,
// not by its content: two different messages that happen to render the
// same text are not a cycle, but resolving the same *ast.Pattern value
// twice on the same stack is.
type scope struct {
	bundle *Bundle

	args      map[string]Value
	localArgs map[string]Value

	placeables int
	travelled  []*ast.Pattern
	errors     []FluentError
	dirty      bool
}

func newScope(b *Bundle, args map[string]Value) *scope {
	return &scope{bundle: b, args: args}
}

func (s *scope) addError(err FluentError) {
	s.errors = append(s.errors, err)
}

// lookupVariable resolves $id against the term-local arguments in effect,
// if any, falling back to the caller-supplied arguments. A miss while
// inside a term's local arguments is deliberately not reported: the
// source runtime's own resolver only raises a reference error for the
// outer, caller-supplied argument scope, since a term author who names a
// parameter the caller never has to supply is a normal, expected shape
// (the term simply falls back to "$name" placeholder text for that one
// placeable rather than failing the whole message).
func (s *scope) lookupVariable(id string) (Value, bool) {
	if s.localArgs != nil {
		if v, ok := s.localArgs[id]; ok {
			return v, true
		}
		return nil, false
	}
	if s.args != nil {
		if v, ok := s.args[id]; ok {
			return v, true
		}
	}
	return nil, false
}

func (s *scope) variableMissIsError() bool {
	return s.localArgs == nil
}

// track resolves pattern within the cycle-detection stack: if pattern is
// already on the stack, it records a CyclicReferenceError and returns the
// reference's own error text instead of recursing; otherwise it pushes
// pattern, resolves it, and pops it back off before returning.
func (s *scope) track(pattern *ast.Pattern, label string, resolve func() string) string {
	if s.dirty {
		return "???"
	}
	for _, p := range s.travelled {
		if p == pattern {
			s.addError(&CyclicReferenceError{})
			return "{" + label + "}"
		}
	}
	s.travelled = append(s.travelled, pattern)
	out := resolve()
	s.travelled = s.travelled[:len(s.travelled)-1]
	return out
}

// countPlaceable increments the per-call placeable budget, marking the
// scope dirty and recording TooManyPlaceablesError the first time it's
// exceeded. Once dirty, every subsequent write short-circuits to "???"
// without doing any further resolution work.
func (s *scope) countPlaceable() bool {
	if s.dirty {
		return false
	}
	s.placeables++
	if s.placeables > maxPlaceables {
		s.dirty = true
		s.addError(&TooManyPlaceablesError{})
		return false
	}
	return true
}
