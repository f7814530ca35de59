package text

import (
	"strings"
	"unicode/utf8"
)

// Wrap breaks message into lines no wider than width visible cells.
//
// Each source line is wrapped on its own. Blank or whitespace-only source
// lines become a single empty output line, so paragraph breaks survive.
// Words are packed greedily with one separating space; a word wider than
// width is hard-split with HardSplit. The result is never empty: an empty
// message yields one empty line.
func Wrap(message string, width int) []string {
	if width < 1 {
		width = 1
	}

	var out []string
	for _, line := range txSourceLines(message) {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}

		var cur strings.Builder
		curWidth := 0
		for _, word := range strings.Fields(line) {
			ww := VisibleWidth(word)
			if cur.Len() > 0 && curWidth+1+ww <= width {
				cur.WriteByte(' ')
				cur.WriteString(word)
				curWidth += 1 + ww
				continue
			}

			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
				curWidth = 0
			}

			if ww <= width {
				cur.WriteString(word)
				curWidth = ww
				continue
			}
			out = append(out, HardSplit(word, width)...)
		}

		if cur.Len() > 0 {
			out = append(out, cur.String())
		}
	}

	if len(out) == 0 {
		return []string{""}
	}
	return out
}

// HardSplit cuts word at code point boundaries into pieces no wider than
// width. Escape sequences travel whole with the piece they appear in. Every
// piece holds at least one visible code point, so a glyph wider than width
// still makes progress on a line of its own.
func HardSplit(word string, width int) []string {
	if width < 1 {
		width = 1
	}

	var out []string
	var cur strings.Builder
	curWidth := 0
	hasGlyph := false

	for i := 0; i < len(word); {
		if word[i] == esc {
			n := EscapeLen(word, i)
			cur.WriteString(word[i : i+n])
			i += n
			continue
		}

		r, size := utf8.DecodeRuneInString(word[i:])
		w := runeWidth(r)
		if hasGlyph && curWidth+w > width {
			out = append(out, cur.String())
			cur.Reset()
			curWidth = 0
			hasGlyph = false
		}
		cur.WriteString(word[i : i+size])
		curWidth += w
		hasGlyph = true
		i += size
	}

	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// txSourceLines splits message on newlines the way a line reader would: a
// single trailing newline does not start another line, and a trailing
// carriage return is dropped from each line.
func txSourceLines(message string) []string {
	if message == "" {
		return nil
	}
	message = strings.TrimSuffix(message, "\n")
	lines := strings.Split(message, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
