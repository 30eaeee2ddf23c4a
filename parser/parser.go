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

// Package parser implements a byte-level, indentation-sensitive
// recursive-descent parser for FTL resources. It never fails outright: a
// span of source that cannot be parsed as an entry is recorded as an
// ast.Junk entry alongside the diagnostics produced while trying, and
// parsing resumes at the next line that looks like it could start a new
// entry.
package parser

import (
	"strings"
	"unicode"

	"github.com/go-fluent/ftl/ast"
)

// Parser drives an ast.Cursor over FTL source, one entry at a time.
type Parser struct {
	cur    *ast.Cursor
	source string
}

// New creates a Parser over source.
func New(source string) *Parser {
	return &Parser{cur: ast.NewCursor(source), source: source}
}

// Parse consumes the whole source and returns the resulting Resource along
// with every diagnostic produced along the way. The Resource is always
// usable even when errs is non-empty: malformed spans appear in its Body as
// *ast.Junk entries rather than aborting the parse.
func Parse(source string) (*ast.Resource, []*Error) {
	return New(source).Parse()
}

// Parse runs the parser to completion. See the package-level Parse for the
// contract.
func (p *Parser) Parse() (*ast.Resource, []*Error) {
	var errs []*Error
	var body []ast.Entry

	p.cur.SkipBlankBlock()

	var pending *ast.Comment
	lastBlankCount := 0

	for !p.cur.AtEOF() {
		entryStart := p.cur.Pos()
		entry, err := p.getEntry(entryStart)

		if pending != nil {
			attached := false
			if err == nil && lastBlankCount < 2 {
				switch e := entry.(type) {
				case *ast.Message:
					e.Comment = pending
					attached = true
				case *ast.Term:
					e.Comment = pending
					attached = true
				}
			}
			if !attached {
				body = append(body, pending)
			}
			pending = nil
		}

		switch {
		case err != nil:
			p.cur.SkipToNextEntryStart()
			err.Slice = [2]int{entryStart, p.cur.Pos()}
			errs = append(errs, err)
			body = append(body, &ast.Junk{
				Content:     p.cur.Slice(entryStart, p.cur.Pos()),
				Annotations: []error{err},
				Span:        ast.Span{Start: entryStart, End: p.cur.Pos()},
			})
		case isStandaloneComment(entry):
			pending = entry.(*ast.Comment)
		default:
			body = append(body, entry)
		}

		lastBlankCount = p.cur.SkipBlankBlock()
	}

	if pending != nil {
		body = append(body, pending)
	}

	return &ast.Resource{Source: p.source, Body: body}, errs
}

func isStandaloneComment(e ast.Entry) bool {
	c, ok := e.(*ast.Comment)
	return ok && c.Level == ast.StandaloneComment
}

func (p *Parser) getEntry(entryStart int) (ast.Entry, *Error) {
	b, ok := p.cur.Byte()
	if !ok {
		return nil, newError(ExpectedEntry, p.cur.Pos())
	}
	switch b {
	case '#':
		comment, level, err := p.getComment()
		if err != nil {
			return nil, err
		}
		comment.Span = ast.Span{Start: entryStart, End: p.cur.Pos()}
		switch level {
		case 2:
			comment.Level = ast.GroupComment
		case 3:
			comment.Level = ast.ResourceComment
		default:
			comment.Level = ast.StandaloneComment
		}
		return comment, nil
	case '-':
		return p.getTerm(entryStart)
	default:
		return p.getMessage(entryStart)
	}
}

func (p *Parser) getMessage(entryStart int) (*ast.Message, *Error) {
	id, err := p.getIdentifier()
	if err != nil {
		return nil, err
	}
	p.cur.SkipBlankInline()
	if !p.cur.Expect('=') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg("=")
	}
	pattern, err := p.getPattern()
	if err != nil {
		return nil, err
	}

	p.cur.SkipBlankBlock()
	attributes := p.getAttributes()

	if pattern == nil && len(attributes) == 0 {
		return nil, newError(ExpectedMessageField, entryStart).withArg(id.Name)
	}

	return &ast.Message{
		ID:         id,
		Value:      pattern,
		Attributes: attributes,
		Span:       ast.Span{Start: entryStart, End: p.cur.Pos()},
	}, nil
}

func (p *Parser) getTerm(entryStart int) (*ast.Term, *Error) {
	if !p.cur.Expect('-') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg("-")
	}
	id, err := p.getIdentifier()
	if err != nil {
		return nil, err
	}
	p.cur.SkipBlankInline()
	if !p.cur.Expect('=') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg("=")
	}
	p.cur.SkipBlankInline()

	value, err := p.getPattern()
	if err != nil {
		return nil, err
	}

	p.cur.SkipBlankBlock()
	attributes := p.getAttributes()

	if value == nil {
		return nil, newError(ExpectedTermField, entryStart).withArg(id.Name)
	}

	return &ast.Term{
		ID:         id,
		Value:      value,
		Attributes: attributes,
		Span:       ast.Span{Start: entryStart, End: p.cur.Pos()},
	}, nil
}

// getAttributes never fails: an attribute that doesn't parse just means the
// attribute list ended, and the cursor backtracks to before that line.
func (p *Parser) getAttributes() []*ast.Attribute {
	var attrs []*ast.Attribute
	for {
		lineStart := p.cur.Pos()
		p.cur.SkipBlankInline()
		if !p.cur.Is('.') {
			p.cur.SetPos(lineStart)
			break
		}
		attr, err := p.getAttribute()
		if err != nil {
			p.cur.SetPos(lineStart)
			break
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func (p *Parser) getAttribute() (*ast.Attribute, *Error) {
	start := p.cur.Pos()
	if !p.cur.Expect('.') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg(".")
	}
	id, err := p.getIdentifier()
	if err != nil {
		return nil, err
	}
	p.cur.SkipBlankInline()
	if !p.cur.Expect('=') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg("=")
	}
	pattern, err := p.getPattern()
	if err != nil {
		return nil, err
	}
	if pattern == nil {
		return nil, newError(MissingValue, p.cur.Pos())
	}
	return &ast.Attribute{ID: id, Value: pattern, Span: ast.Span{Start: start, End: p.cur.Pos()}}, nil
}

func (p *Parser) getIdentifier() (*ast.Identifier, *Error) {
	start := p.cur.Pos()
	b, ok := p.cur.Byte()
	if !ok || !isAlpha(b) {
		return nil, newError(ExpectedCharRange, start).withArg("a-zA-Z")
	}
	p.cur.Advance()
	for {
		b, ok := p.cur.Byte()
		if !ok || !(isAlpha(b) || isDigit(b) || b == '_' || b == '-') {
			break
		}
		p.cur.Advance()
	}
	end := p.cur.Pos()
	return &ast.Identifier{Name: p.cur.Slice(start, end), Span: ast.Span{Start: start, End: end}}, nil
}

func (p *Parser) getAttributeAccessor() (*ast.Identifier, *Error) {
	if !p.cur.TakeByte('.') {
		return nil, nil
	}
	return p.getIdentifier()
}

func (p *Parser) getVariantKey() (ast.VariantKey, *Error) {
	if !p.cur.Expect('[') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg("[")
	}
	p.cur.SkipBlank()

	var key ast.VariantKey
	if p.isNumberStart() {
		nl, err := p.getNumberLiteral()
		if err != nil {
			return nil, err
		}
		key = nl
	} else {
		id, err := p.getIdentifier()
		if err != nil {
			return nil, err
		}
		key = id
	}

	p.cur.SkipBlank()
	if !p.cur.Expect(']') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg("]")
	}
	return key, nil
}

func (p *Parser) getVariants() ([]*ast.Variant, *Error) {
	var variants []*ast.Variant
	hasDefault := false

	for p.cur.Is('*') || p.cur.Is('[') {
		variantStart := p.cur.Pos()
		isDefault := p.cur.TakeByte('*')
		if isDefault {
			if hasDefault {
				return nil, newError(MultipleDefaultVariants, p.cur.Pos())
			}
			hasDefault = true
		}

		key, err := p.getVariantKey()
		if err != nil {
			return nil, err
		}
		value, err := p.getPattern()
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, newError(MissingValue, p.cur.Pos())
		}
		variants = append(variants, &ast.Variant{
			Key: key, Value: value, Default: isDefault,
			Span: ast.Span{Start: variantStart, End: p.cur.Pos()},
		})
		p.cur.SkipBlank()
	}

	if !hasDefault {
		return nil, newError(MissingDefaultVariant, p.cur.Pos())
	}
	return variants, nil
}

// textElementTermination records why getTextSlice stopped scanning.
type textElementTermination int

const (
	termLineFeed textElementTermination = iota
	termCRLF
	termPlaceableStart
	termEOF
)

// textElementPosition tracks where a text run sits in the pattern, which
// drives the dedent computation below.
type textElementPosition int

const (
	posInitialLineStart textElementPosition = iota
	posLineStart
	posContinuation
)

type textElementType int

const (
	typeBlank textElementType = iota
	typeNonBlank
)

// patternElem defers slicing pattern text out of the source until the whole
// pattern has been scanned and its common indent is known, so that
// dedenting never needs a second pass over the source bytes.
type patternElem struct {
	placeable        bool
	expr             ast.Expression
	start, end       int
	indent           int
	position         textElementPosition
}

func (p *Parser) getPattern() (*ast.Pattern, *Error) {
	patternStart := p.cur.Pos()
	var elements []patternElem
	lastNonBlank := -1
	commonIndent := 0
	haveCommonIndent := false

	p.cur.SkipBlankInline()

	var role textElementPosition
	if p.cur.SkipEOL() {
		p.cur.SkipBlankBlock()
		role = posLineStart
	} else {
		role = posInitialLineStart
	}

	for !p.cur.AtEOF() {
		if p.cur.Is('{') {
			if role == posLineStart {
				commonIndent = 0
				haveCommonIndent = true
			}
			phStart := p.cur.Pos()
			exp, err := p.getPlaceable()
			if err != nil {
				return nil, err
			}
			lastNonBlank = len(elements)
			elements = append(elements, patternElem{placeable: true, expr: exp, start: phStart, end: p.cur.Pos()})
			role = posContinuation
			continue
		}

		sliceStart := p.cur.Pos()
		indent := 0
		if role == posLineStart {
			indent = p.cur.SkipBlankInline()
			if p.cur.AtEOF() {
				break
			}
			b, _ := p.cur.Byte()
			if indent == 0 {
				if b != '\n' {
					break
				}
			} else if !isBytePatternContinuation(b) {
				p.cur.SetPos(sliceStart)
				break
			}
		}

		start, end, elemType, reason, err := p.getTextSlice()
		if err != nil {
			return nil, err
		}
		if start != end {
			if role == posLineStart && elemType == typeNonBlank {
				if haveCommonIndent {
					if indent < commonIndent {
						commonIndent = indent
					}
				} else {
					commonIndent = indent
					haveCommonIndent = true
				}
			}
			if role != posLineStart || elemType == typeNonBlank || reason == termLineFeed {
				if elemType == typeNonBlank {
					lastNonBlank = len(elements)
				}
				elements = append(elements, patternElem{
					start: sliceStart, end: end, indent: indent, position: role,
				})
			}
		}

		switch reason {
		case termLineFeed:
			role = posLineStart
		default:
			role = posContinuation
		}
	}

	if lastNonBlank < 0 {
		return nil, nil
	}

	finalElements := make([]ast.PatternElement, 0, lastNonBlank+1)
	for i := 0; i <= lastNonBlank; i++ {
		el := elements[i]
		if el.placeable {
			finalElements = append(finalElements, &ast.Placeable{
				Expression: el.expr,
				Span:       ast.Span{Start: el.start, End: el.end},
			})
			continue
		}
		start := el.start
		if el.position == posLineStart {
			if haveCommonIndent {
				start = el.start + min(el.indent, commonIndent)
			} else {
				start = el.start + el.indent
			}
		}
		value := p.cur.Slice(start, el.end)
		if i == lastNonBlank {
			value = strings.TrimRightFunc(value, unicode.IsSpace)
		}
		finalElements = append(finalElements, &ast.TextElement{Value: value, Span: ast.Span{Start: start, End: el.end}})
	}

	return &ast.Pattern{Elements: finalElements, Span: ast.Span{Start: patternStart, End: p.cur.Pos()}}, nil
}

func (p *Parser) getTextSlice() (start, end int, elemType textElementType, reason textElementTermination, err *Error) {
	start = p.cur.Pos()
	elemType = typeBlank

	for {
		b, ok := p.cur.Byte()
		if !ok {
			end = p.cur.Pos()
			reason = termEOF
			return
		}
		switch {
		case b == ' ':
			p.cur.Advance()
		case b == '\n':
			p.cur.Advance()
			end = p.cur.Pos()
			reason = termLineFeed
			return
		case b == '\r' && p.cur.IsAt(1, '\n'):
			p.cur.Advance()
			end = p.cur.Pos() - 1
			reason = termCRLF
			return
		case b == '{':
			end = p.cur.Pos()
			reason = termPlaceableStart
			return
		case b == '}':
			err = newError(UnbalancedClosingBrace, p.cur.Pos())
			return
		default:
			elemType = typeNonBlank
			p.cur.Advance()
		}
	}
}

func (p *Parser) getComment() (*ast.Comment, int, *Error) {
	level := 0
	haveLevel := false
	var lines []string

	for !p.cur.AtEOF() {
		lineLevel := p.getCommentLevel()
		if lineLevel == 0 {
			p.cur.SetPos(p.cur.Pos() - 1)
			break
		}
		if haveLevel && lineLevel != level {
			p.cur.SetPos(p.cur.Pos() - lineLevel)
			break
		}
		level = lineLevel
		haveLevel = true

		if p.cur.AtEOF() {
			break
		} else if p.cur.Is('\n') {
			line, err := p.getCommentLine()
			if err != nil {
				return nil, 0, err
			}
			lines = append(lines, line)
		} else {
			if !p.cur.Expect(' ') {
				if len(lines) == 0 {
					return nil, 0, newError(ExpectedToken, p.cur.Pos()).withArg(" ")
				}
				p.cur.SetPos(p.cur.Pos() - lineLevel)
				break
			}
			line, err := p.getCommentLine()
			if err != nil {
				return nil, 0, err
			}
			lines = append(lines, line)
		}
		p.cur.SkipEOL()
	}

	return &ast.Comment{Lines: lines}, level, nil
}

func (p *Parser) getCommentLevel() int {
	n := 0
	for p.cur.TakeByte('#') {
		n++
	}
	return n
}

func (p *Parser) getCommentLine() (string, *Error) {
	start := p.cur.Pos()
	for !p.cur.AtEOF() && !p.isEOL() {
		p.cur.Advance()
	}
	return p.cur.Slice(start, p.cur.Pos()), nil
}

func (p *Parser) getPlaceable() (ast.Expression, *Error) {
	if !p.cur.Expect('{') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg("{")
	}
	p.cur.SkipBlank()
	exp, err := p.getExpression()
	if err != nil {
		return nil, err
	}
	p.cur.SkipBlankInline()
	if !p.cur.Expect('}') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg("}")
	}
	if tref, ok := exp.(*ast.TermReference); ok && tref.Attribute != nil {
		return nil, newError(TermAttributeAsPlaceable, p.cur.Pos())
	}
	return exp, nil
}

func (p *Parser) getExpression() (ast.Expression, *Error) {
	exp, err := p.getInlineExpression()
	if err != nil {
		return nil, err
	}
	p.cur.SkipBlank()

	if !(p.cur.Is('-') && p.cur.IsAt(1, '>')) {
		if tref, ok := exp.(*ast.TermReference); ok && tref.Attribute != nil {
			return nil, newError(TermAttributeAsPlaceable, p.cur.Pos())
		}
		return exp, nil
	}

	switch v := exp.(type) {
	case *ast.MessageReference:
		if v.Attribute == nil {
			return nil, newError(MessageReferenceAsSelector, p.cur.Pos())
		}
		return nil, newError(MessageAttributeAsSelector, p.cur.Pos())
	case *ast.TermReference:
		if v.Attribute == nil {
			return nil, newError(TermReferenceAsSelector, p.cur.Pos())
		}
	case *ast.StringLiteral, *ast.NumberLiteral, *ast.VariableReference, *ast.FunctionReference:
		// valid selectors
	default:
		return nil, newError(ExpectedSimpleExpressionAsSelector, p.cur.Pos())
	}

	selectorStart := exp.Pos().Start
	p.cur.Advance() // '-'
	p.cur.Advance() // '>'

	p.cur.SkipBlankInline()
	if !p.cur.SkipEOL() {
		return nil, newError(ExpectedCharRange, p.cur.Pos()).withArg(`\n | \r\n`)
	}
	p.cur.SkipBlank()

	variants, err := p.getVariants()
	if err != nil {
		return nil, err
	}

	return &ast.SelectExpression{
		Selector: exp,
		Variants: variants,
		Span:     ast.Span{Start: selectorStart, End: p.cur.Pos()},
	}, nil
}

func (p *Parser) getInlineExpression() (ast.InlineExpression, *Error) {
	start := p.cur.Pos()
	b, ok := p.cur.Byte()
	if !ok {
		return nil, newError(ExpectedInlineExpression, p.cur.Pos())
	}

	switch {
	case b == '"':
		return p.getStringLiteral(start)

	case isDigit(b):
		return p.getNumberLiteral()

	case b == '-':
		p.cur.Advance()
		if p.isIdentifierStart() {
			id, err := p.getIdentifier()
			if err != nil {
				return nil, err
			}
			attr, err := p.getAttributeAccessor()
			if err != nil {
				return nil, err
			}
			args, err := p.getCallArguments()
			if err != nil {
				return nil, err
			}
			return &ast.TermReference{ID: id, Attribute: attr, Arguments: args, Span: ast.Span{Start: start, End: p.cur.Pos()}}, nil
		}
		p.cur.SetPos(start)
		return p.getNumberLiteral()

	case b == '$':
		p.cur.Advance()
		id, err := p.getIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.VariableReference{ID: id, Span: ast.Span{Start: start, End: p.cur.Pos()}}, nil

	case isAlpha(b):
		id, err := p.getIdentifier()
		if err != nil {
			return nil, err
		}
		args, err := p.getCallArguments()
		if err != nil {
			return nil, err
		}
		if args != nil {
			if !isValidCallee(id.Name) {
				return nil, newError(ForbiddenCallee, p.cur.Pos())
			}
			return &ast.FunctionReference{ID: id, Arguments: args, Span: ast.Span{Start: start, End: p.cur.Pos()}}, nil
		}
		attr, err := p.getAttributeAccessor()
		if err != nil {
			return nil, err
		}
		return &ast.MessageReference{ID: id, Attribute: attr, Span: ast.Span{Start: start, End: p.cur.Pos()}}, nil

	case b == '{':
		exp, err := p.getPlaceable()
		if err != nil {
			return nil, err
		}
		return &ast.PlaceableExpression{Expression: exp, Span: ast.Span{Start: start, End: p.cur.Pos()}}, nil

	default:
		return nil, newError(ExpectedInlineExpression, p.cur.Pos())
	}
}

func (p *Parser) getStringLiteral(start int) (*ast.StringLiteral, *Error) {
	p.cur.Advance() // opening quote
	contentStart := p.cur.Pos()

loop:
	for {
		b, ok := p.cur.Byte()
		if !ok {
			break loop
		}
		switch b {
		case '\\':
			next, okNext := p.cur.ByteAt(1)
			switch {
			case okNext && (next == '\\' || next == '{' || next == '"'):
				p.cur.SetPos(p.cur.Pos() + 2)
			case okNext && next == 'u':
				p.cur.SetPos(p.cur.Pos() + 2)
				if err := p.skipUnicodeEscapeSequence(4); err != nil {
					return nil, err
				}
			case okNext && next == 'U':
				p.cur.SetPos(p.cur.Pos() + 2)
				if err := p.skipUnicodeEscapeSequence(6); err != nil {
					return nil, err
				}
			default:
				arg := ""
				if okNext {
					arg = string(next)
				}
				return nil, newError(UnknownEscapeSequence, p.cur.Pos()).withArg(arg)
			}
		case '"':
			break loop
		case '\n':
			return nil, newError(UnterminatedStringExpression, p.cur.Pos())
		default:
			p.cur.Advance()
		}
	}

	contentEnd := p.cur.Pos()
	if !p.cur.Expect('"') {
		return nil, newError(UnterminatedStringExpression, p.cur.Pos())
	}
	return &ast.StringLiteral{Raw: p.cur.Slice(contentStart, contentEnd), Span: ast.Span{Start: start, End: p.cur.Pos()}}, nil
}

func (p *Parser) skipUnicodeEscapeSequence(length int) *Error {
	start := p.cur.Pos()
	if _, ok := p.cur.HexDigits(length); !ok {
		end := p.cur.Pos()
		if !p.cur.AtEOF() {
			end++
		}
		return newError(InvalidUnicodeEscapeSequence, p.cur.Pos()).withArg(p.cur.Slice(start, end))
	}
	return nil
}

func (p *Parser) getCallArguments() (*ast.CallArguments, *Error) {
	start := p.cur.Pos()
	p.cur.SkipBlank()
	if !p.cur.TakeByte('(') {
		p.cur.SetPos(start)
		return nil, nil
	}

	var positional []ast.InlineExpression
	var named []*ast.NamedArgument
	seen := map[string]bool{}

	p.cur.SkipBlank()
	for !p.cur.AtEOF() {
		if p.cur.Is(')') {
			break
		}

		argStart := p.cur.Pos()
		expr, err := p.getInlineExpression()
		if err != nil {
			return nil, err
		}

		mref, isMsgRef := expr.(*ast.MessageReference)
		if isMsgRef && mref.Attribute == nil {
			p.cur.SkipBlank()
			if p.cur.Is(':') {
				if seen[mref.ID.Name] {
					return nil, newError(DuplicatedNamedArgument, p.cur.Pos()).withArg(mref.ID.Name)
				}
				p.cur.Advance()
				p.cur.SkipBlank()
				val, err := p.getInlineExpression()
				if err != nil {
					return nil, err
				}
				seen[mref.ID.Name] = true
				named = append(named, &ast.NamedArgument{
					Name:  &ast.Identifier{Name: mref.ID.Name, Span: mref.ID.Span},
					Value: val,
					Span:  ast.Span{Start: argStart, End: p.cur.Pos()},
				})
			} else {
				if len(named) > 0 {
					return nil, newError(PositionalArgumentFollowsNamed, p.cur.Pos())
				}
				positional = append(positional, expr)
			}
		} else {
			if len(named) > 0 {
				return nil, newError(PositionalArgumentFollowsNamed, p.cur.Pos())
			}
			positional = append(positional, expr)
		}

		p.cur.SkipBlank()
		p.cur.TakeByte(',')
		p.cur.SkipBlank()
	}

	if !p.cur.Expect(')') {
		return nil, newError(ExpectedToken, p.cur.Pos()).withArg(")")
	}
	return &ast.CallArguments{Positional: positional, Named: named, Span: ast.Span{Start: start, End: p.cur.Pos()}}, nil
}

func (p *Parser) getNumberLiteral() (*ast.NumberLiteral, *Error) {
	start := p.cur.Pos()
	p.cur.TakeByte('-')
	if err := p.skipDigits(); err != nil {
		return nil, err
	}
	if p.cur.TakeByte('.') {
		if err := p.skipDigits(); err != nil {
			return nil, err
		}
	}
	end := p.cur.Pos()
	return &ast.NumberLiteral{Raw: p.cur.Slice(start, end), Span: ast.Span{Start: start, End: end}}, nil
}

func (p *Parser) skipDigits() *Error {
	if !p.cur.Digits() {
		return newError(ExpectedCharRange, p.cur.Pos()).withArg("0-9")
	}
	return nil
}

func (p *Parser) isNumberStart() bool {
	b, ok := p.cur.Byte()
	return ok && (b == '-' || isDigit(b))
}

func (p *Parser) isIdentifierStart() bool {
	b, ok := p.cur.Byte()
	return ok && isAlpha(b)
}

func (p *Parser) isEOL() bool {
	b, ok := p.cur.Byte()
	if !ok {
		return false
	}
	return b == '\n' || (b == '\r' && p.cur.IsAt(1, '\n'))
}

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isValidCallee(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !((c >= 'A' && c <= 'Z') || isDigit(c) || c == '_' || c == '-') {
			return false
		}
	}
	return true
}

func isBytePatternContinuation(b byte) bool {
	return !(b == '}' || b == '.' || b == '[' || b == '*')
}
