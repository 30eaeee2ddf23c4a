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

// Package ftl parses and resolves Fluent Translation List resources: a
// byte-level parser that never hard-fails (see the ast and parser
// packages), and a Bundle that stores parsed messages and terms and
// resolves their patterns to text.
package ftl

import (
	"github.com/go-fluent/ftl/ast"
	"golang.org/x/text/language"
)

// FluentFunction is a host-registered function invokable from a pattern as
// FOO(positional, named: args). Returning ErrorValue signals that the
// function could not produce a result for its arguments; the resolver then
// treats the call the same as an unknown reference.
type FluentFunction func(positional []Value, named map[string]Value) Value

// Bundle owns a locale, a set of parsed resources, and a function registry,
// and resolves messages and terms against them. A Bundle is not safe for
// concurrent AddResource/AddFunction calls racing with Format calls; callers
// should finish registering resources and functions before resolving.
type Bundle struct {
	Locale language.Tag

	// UseIsolating wraps multi-element pattern placeables (other than bare
	// message/term references and string literals) in U+2068/U+2069 bidi
	// isolation characters. Defaults to true, matching the source
	// runtime's default for user-facing bundles.
	UseIsolating bool

	messages map[string]*ast.Message
	terms    map[string]*ast.Term
	order    []string // insertion order of message/term ids, for diagnostics

	functions map[string]FluentFunction

	rules localePluralRules
}

// NewBundle creates an empty Bundle for locale, with bidi isolation enabled
// and no resources, terms, or functions registered yet.
func NewBundle(locale language.Tag) *Bundle {
	return &Bundle{
		Locale:       locale,
		UseIsolating: true,
		messages:     make(map[string]*ast.Message),
		terms:        make(map[string]*ast.Term),
		functions:    make(map[string]FluentFunction),
		rules:        lookupPluralRules(locale),
	}
}

// AddFunction registers name as invokable from patterns in this bundle. A
// later call with the same name replaces the earlier one; unlike messages
// and terms, functions have no "first wins" collision diagnostic because
// they are registered by the host application, not by parsed FTL source.
func (b *Bundle) AddFunction(name string, fn FluentFunction) {
	b.functions[name] = fn
}

// AddResource registers every message and term in res with the bundle. A
// message or term id already owned by a previously added resource is left
// in place and reported as an OverridingError; Junk entries are silently
// skipped, since they were already reported as parse errors by whatever
// produced res.
func (b *Bundle) AddResource(res *ast.Resource) []FluentError {
	var errs []FluentError
	for _, entry := range res.Body {
		switch e := entry.(type) {
		case *ast.Message:
			if _, exists := b.messages[e.ID.Name]; exists {
				errs = append(errs, &OverridingError{Kind: MessageKind, ID: e.ID.Name})
				continue
			}
			b.messages[e.ID.Name] = e
			b.order = append(b.order, e.ID.Name)
		case *ast.Term:
			if _, exists := b.terms[e.ID.Name]; exists {
				errs = append(errs, &OverridingError{Kind: TermKind, ID: e.ID.Name})
				continue
			}
			b.terms[e.ID.Name] = e
			b.order = append(b.order, "-"+e.ID.Name)
		case *ast.Junk:
			continue
		}
	}
	return errs
}

// HasMessage reports whether id was registered by some added resource.
func (b *Bundle) HasMessage(id string) bool {
	_, ok := b.messages[id]
	return ok
}

func (b *Bundle) getMessage(id string) (*ast.Message, bool) {
	m, ok := b.messages[id]
	return m, ok
}

func (b *Bundle) getTerm(id string) (*ast.Term, bool) {
	t, ok := b.terms[id]
	return t, ok
}

// categorize maps n to a CLDR plural category under the bundle's locale,
// choosing the cardinal or ordinal rule set according to ruleType.
func (b *Bundle) categorize(n Number, ruleType NumberType) PluralCategory {
	return b.rules.Categorize(OperandsFromNumber(n), ruleType)
}

// FormatMessage resolves the value pattern of the message named id with the
// given arguments. ok is false if no such message was ever registered; a
// registered message with no value pattern (attributes only) reports a
// NoValueError among errs and returns an empty string.
func (b *Bundle) FormatMessage(id string, args map[string]Value) (out string, errs []FluentError, ok bool) {
	msg, found := b.getMessage(id)
	if !found {
		return "", nil, false
	}
	if msg.Value == nil {
		return "", []FluentError{&NoValueError{ID: id}}, true
	}
	out, errs = FormatPattern(b, msg.Value, args)
	return out, errs, true
}

// FormatAttribute resolves the named attribute of the message id. ok is
// false if the message or the attribute does not exist.
func (b *Bundle) FormatAttribute(id, attribute string, args map[string]Value) (out string, errs []FluentError, ok bool) {
	msg, found := b.getMessage(id)
	if !found {
		return "", nil, false
	}
	for _, attr := range msg.Attributes {
		if attr.ID.Name == attribute {
			out, errs = FormatPattern(b, attr.Value, args)
			return out, errs, true
		}
	}
	return "", nil, false
}
