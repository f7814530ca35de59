package pony

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"gitlab.com/tinyland/lab/ponysay/pkg/balloon"
	"gitlab.com/tinyland/lab/ponysay/pkg/text"
)

// pnAnchor matches the balloon anchor with its optional width hint.
var pnAnchor = regexp.MustCompile(`\$balloon(\d*)\$`)

// AnchorWidth returns the width hint of the first anchor in template, as in
// "$balloon50$", or 0 if the anchor carries no hint or is absent.
func AnchorWidth(template string) int {
	m := pnAnchor.FindStringSubmatch(template)
	if m == nil || m[1] == "" {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// InsertBalloon splices balloonLines into template at the first balloon
// anchor and expands the link tokens using style.
//
// The first balloon line takes the text before the anchor as its prefix.
// Later lines are indented to where that prefix ends once displayed, so the
// balloon stays in one column, and the text after the anchor follows the
// last balloon line. Only the first anchor is expanded. A template without
// an anchor gets the balloon above it.
//
// Every output line then has "$\$", "$/$" and "$X$" replaced with the
// style's link glyphs and "$$" replaced with "$", in a single pass.
func InsertBalloon(template string, balloonLines []string, style *balloon.Style) string {
	lines := pnSplitLines(template)
	out := make([]string, 0, len(lines)+len(balloonLines))
	inserted := len(balloonLines) == 0

	for _, line := range lines {
		loc := pnAnchor.FindStringIndex(line)
		if inserted || loc == nil {
			out = append(out, line)
			continue
		}

		prefix, suffix := line[:loc[0]], line[loc[1]:]
		indent := pnIndent(prefix, style)
		for i, bl := range balloonLines {
			lead := indent
			if i == 0 {
				lead = prefix
			}
			row := lead + bl
			if i == len(balloonLines)-1 {
				row += suffix
			}
			out = append(out, row)
		}
		inserted = true
	}

	if !inserted {
		out = append(slices.Clone(balloonLines), out...)
	}
	for i := range out {
		out[i] = pnExpandTokens(out[i], style)
	}
	return strings.Join(out, "\n")
}

func pnExpandTokens(line string, style *balloon.Style) string {
	if !strings.Contains(line, "$") {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); {
		j := strings.IndexByte(line[i:], '$')
		if j < 0 {
			b.WriteString(line[i:])
			break
		}
		b.WriteString(line[i : i+j])
		i += j

		rest := line[i:]
		switch {
		case strings.HasPrefix(rest, `$\$`):
			b.WriteString(text.Reset + style.Link() + text.Reset)
			i += 3
		case strings.HasPrefix(rest, "$/$"):
			b.WriteString(text.Reset + style.LinkMirror() + text.Reset)
			i += 3
		case strings.HasPrefix(rest, "$X$"):
			b.WriteString(text.Reset + style.LinkCross() + text.Reset)
			i += 3
		case strings.HasPrefix(rest, "$$"):
			b.WriteByte('$')
			i += 2
		default:
			b.WriteByte('$')
			i++
		}
	}
	return b.String()
}

// pnIndent returns blank space as wide as prefix will be when shown: link
// tokens are expanded first, each visible cell becomes a space, and tabs
// are kept so later rows reach the same tab stop.
func pnIndent(prefix string, style *balloon.Style) string {
	shown := pnExpandTokens(prefix, style)
	var b strings.Builder
	for i := 0; i < len(shown); {
		if n := text.EscapeLen(shown, i); n > 0 {
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(shown[i:])
		i += size
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", text.VisibleWidth(string(r))))
	}
	return b.String()
}

// pnSplitLines splits a template into lines, ignoring one trailing newline.
func pnSplitLines(template string) []string {
	if template == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(template, "\n"), "\n")
}
