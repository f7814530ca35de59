// Package text provides the escape-aware measuring, padding and word-wrapping
// primitives the balloon renderer is built on. Every width in this module is
// a terminal cell count computed by VisibleWidth; byte and rune counts are
// never used for layout.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	esc = '\x1b'
	bel = '\a'
)

// Reset is the SGR sequence that clears all colors and attributes.
const Reset = "\x1b[0m"

// txCond measures code points with East Asian ambiguous characters counted
// as one cell, whatever the process locale says.
var txCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// VisibleWidth returns the number of terminal cells s occupies. Escape
// sequences contribute nothing; every other code point contributes its
// East Asian Width aware column count (0, 1 or 2).
func VisibleWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		if s[i] == esc {
			i += EscapeLen(s, i)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		width += runeWidth(r)
	}
	return width
}

// EscapeLen returns the byte length of the escape sequence starting at s[i],
// or 0 if s[i] is not ESC. Two grammars are recognized:
//
//   - ESC [ ... final: a control sequence ending at the first ASCII letter or '~'
//   - ESC ] ... ST:    a string sequence ending at the first '\' or BEL
//
// Any other introducer consumes ESC plus one code point. Unterminated
// sequences run to the end of s.
func EscapeLen(s string, i int) int {
	if i >= len(s) || s[i] != esc {
		return 0
	}
	j := i + 1
	if j >= len(s) {
		return 1
	}
	r, size := utf8.DecodeRuneInString(s[j:])
	j += size

	switch r {
	case '[':
		for j < len(s) {
			c := s[j]
			j++
			if c == '~' || txIsASCIILetter(c) {
				break
			}
		}
	case ']':
		for j < len(s) {
			c := s[j]
			j++
			if c == '\\' || c == bel {
				break
			}
		}
	}
	return j - i
}

// PadRight pads s with trailing spaces so that its visible width equals
// width. If s is already at least width cells wide it is returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleWidth(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// Fill repeats glyph to cover exactly cells columns. A remainder that the
// glyph cannot fill, or a glyph with no visible width, is covered with
// spaces so the result is always cells wide.
func Fill(glyph string, cells int) string {
	if cells <= 0 {
		return ""
	}
	gw := VisibleWidth(glyph)
	if gw == 0 {
		return strings.Repeat(" ", cells)
	}
	n := cells / gw
	return strings.Repeat(glyph, n) + strings.Repeat(" ", cells-n*gw)
}

// runeWidth returns the cell width of a single code point. Printable ASCII
// takes the fast path; everything else goes through txCond.
func runeWidth(r rune) int {
	if r >= 0x20 && r < 0x7f {
		return 1
	}
	return txCond.RuneWidth(r)
}

func txIsASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
