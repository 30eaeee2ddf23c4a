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

// Cursor is a byte-oriented lookahead cursor over FTL source. All structural
// FTL syntax is ASCII, so the parser only ever needs to reason about the
// source one byte at a time; multi-byte UTF-8 sequences inside text elements
// are passed through untouched because no decoding is required to recognize
// them as "not structural".
//
// Cursor never panics on out-of-range access: reads past the end of the
// source report ok=false instead, which lets the parser treat EOF as just
// another byte class rather than a special case at every call site.
type Cursor struct {
	src []byte
	pos int
}

// NewCursor creates a Cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: []byte(src)}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// SetPos rewinds or fast-forwards the cursor to an arbitrary offset. Callers
// use this to backtrack after a speculative lookahead fails.
func (c *Cursor) SetPos(pos int) { c.pos = pos }

// Len returns the length of the source in bytes.
func (c *Cursor) Len() int { return len(c.src) }

// AtEOF reports whether the cursor has consumed the entire source.
func (c *Cursor) AtEOF() bool { return c.pos >= len(c.src) }

// Byte returns the byte at the current position.
func (c *Cursor) Byte() (byte, bool) {
	return c.ByteAt(0)
}

// ByteAt returns the byte at offset bytes past the current position.
func (c *Cursor) ByteAt(offset int) (byte, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.src) {
		return 0, false
	}
	return c.src[i], true
}

// Is reports whether the current byte equals b.
func (c *Cursor) Is(b byte) bool {
	got, ok := c.Byte()
	return ok && got == b
}

// IsAt reports whether the byte at offset equals b.
func (c *Cursor) IsAt(offset int, b byte) bool {
	got, ok := c.ByteAt(offset)
	return ok && got == b
}

// Advance consumes one byte unconditionally.
func (c *Cursor) Advance() { c.pos++ }

// TakeByte consumes the current byte if it equals b, reporting whether it did.
func (c *Cursor) TakeByte(b byte) bool {
	if c.Is(b) {
		c.pos++
		return true
	}
	return false
}

// Expect requires the current byte to equal b, consuming it and returning
// true on a match. Callers turn a false result into an ExpectedToken error.
func (c *Cursor) Expect(b byte) bool {
	return c.TakeByte(b)
}

// SkipBlankInline consumes a run of ASCII spaces, returning the count skipped.
func (c *Cursor) SkipBlankInline() int {
	start := c.pos
	for c.Is(' ') {
		c.pos++
	}
	return c.pos - start
}

// SkipEOL consumes a single newline, either "\n" or "\r\n", reporting whether
// one was found.
func (c *Cursor) SkipEOL() bool {
	if c.Is('\n') {
		c.pos++
		return true
	}
	if c.Is('\r') && c.IsAt(1, '\n') {
		c.pos += 2
		return true
	}
	return false
}

// SkipBlank consumes any mixture of spaces and newlines.
func (c *Cursor) SkipBlank() {
	for {
		switch {
		case c.Is(' '):
			c.pos++
		case c.Is('\n'):
			c.pos++
		case c.Is('\r') && c.IsAt(1, '\n'):
			c.pos += 2
		default:
			return
		}
	}
}

// SkipBlankBlock consumes zero or more lines that consist only of inline
// blank space followed by a newline, reporting how many such lines it
// consumed. It backtracks to the start of the first non-blank line.
func (c *Cursor) SkipBlankBlock() int {
	count := 0
	for {
		start := c.pos
		c.SkipBlankInline()
		if !c.SkipEOL() {
			c.pos = start
			return count
		}
		count++
	}
}

// SkipToNextEntryStart advances the cursor to the next byte that sits at the
// start of a line and could begin a new top-level entry: an ASCII letter,
// '-', or '#'. It is used during junk recovery.
func (c *Cursor) SkipToNextEntryStart() {
	for {
		b, ok := c.Byte()
		if !ok {
			return
		}
		atLineStart := c.pos == 0 || c.src[c.pos-1] == '\n'
		if atLineStart && (isASCIIAlpha(b) || b == '-' || b == '#') {
			return
		}
		c.pos++
	}
}

// HexDigits consumes up to n ASCII hex digits, stopping at the first byte
// that isn't one. It reports true only if all n were hex digits; either way
// the cursor ends up past whatever run of hex digits it actually found,
// mirroring the source parser's behavior of not backtracking a partial
// escape sequence.
func (c *Cursor) HexDigits(n int) (string, bool) {
	start := c.pos
	for i := 0; i < n; i++ {
		b, ok := c.Byte()
		if !ok || !isHexDigit(b) {
			return string(c.src[start:c.pos]), false
		}
		c.pos++
	}
	return string(c.src[start:c.pos]), true
}

// Digits consumes one or more ASCII decimal digits, reporting whether any
// were found.
func (c *Cursor) Digits() bool {
	start := c.pos
	for {
		b, ok := c.Byte()
		if !ok || !isASCIIDigit(b) {
			break
		}
		c.pos++
	}
	return c.pos != start
}

// Slice returns the source bytes in [start, end) as a string. Because Go
// strings share their backing array on re-slicing, this is a borrow of the
// original source, not a copy.
func (c *Cursor) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(c.src) {
		end = len(c.src)
	}
	if start >= end {
		return ""
	}
	return string(c.src[start:end])
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentifierRest(b byte) bool {
	return isASCIIAlpha(b) || isASCIIDigit(b) || b == '_' || b == '-'
}
