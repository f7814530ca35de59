package balloon

import (
	"slices"

	"gitlab.com/tinyland/lab/ponysay/pkg/text"
)

// Render surrounds lines with the style's borders.
//
// The balloon is as wide as the widest line plus MinWidth, and never
// narrower than minWidth. It also grows to fit the widest pair of side
// glyphs around the widest line, so every row of the result has the same
// visible width. When the balloon would be shorter than minHeight rows,
// blank message lines are appended to reach it.
//
// A border row whose inner corner glyphs do not fit alongside the outer
// corners drops the inner glyphs and fills the gap with the edge glyph.
func (s *Style) Render(lines []string, minWidth, minHeight int) []string {
	if pad := minHeight - s.minHeight - len(lines); pad > 0 {
		lines = append(slices.Clone(lines), make([]string, pad)...)
	}

	widest, sides := 0, 0
	for i, l := range lines {
		widest = max(widest, text.VisibleWidth(l))
		left, right := s.blSides(i, len(lines))
		sides = max(sides, text.VisibleWidth(left)+text.VisibleWidth(right))
	}
	w := max(s.minWidth, widest+s.minWidth, widest+sides, minWidth)

	g := &s.g
	out := make([]string, 0, s.minHeight+len(lines))
	out = append(out, blBorderRows(g.NW, g.NNW, g.N, g.NNE, g.NE, w)...)
	for i, l := range lines {
		left, right := s.blSides(i, len(lines))
		inner := w - text.VisibleWidth(left) - text.VisibleWidth(right)
		out = append(out, left+text.PadRight(l, inner)+right)
	}
	out = append(out, blBorderRows(g.SW, g.SSW, g.S, g.SSE, g.SE, w)...)
	return out
}

// blSides picks the left and right edge glyphs for message line i of n.
func (s *Style) blSides(i, n int) (string, string) {
	g := &s.g
	switch {
	case n == 1:
		return g.WW, g.EE
	case i == 0:
		return g.NWW, g.NEE
	case i == n-1:
		return g.SWW, g.SEE
	default:
		return g.W, g.E
	}
}

// blBorderRows renders one border (top or bottom) at width w. The number of
// rows is the length of the longest list; shorter lists contribute "".
func blBorderRows(outerL, innerL, edge, innerR, outerR []string, w int) []string {
	n := max(len(outerL), len(innerL), len(edge), len(innerR), len(outerR))
	rows := make([]string, 0, n)
	for j := 0; j < n; j++ {
		ol, il, fill, ir, or := row(outerL, j), row(innerL, j), row(edge, j), row(innerR, j), row(outerR, j)
		outer := text.VisibleWidth(ol) + text.VisibleWidth(or)
		inner := text.VisibleWidth(il) + text.VisibleWidth(ir)
		if outer+inner <= w {
			rows = append(rows, ol+il+text.Fill(fill, w-outer-inner)+ir+or)
			continue
		}
		rows = append(rows, ol+text.Fill(fill, w-outer)+or)
	}
	return rows
}

// RenderBalloon wraps message to fit within width columns (borders
// included) and renders it with style. Each wrapped line and each balloon
// row is bracketed with a color reset so colors in the message cannot leak
// into the borders or the figure around them.
func RenderBalloon(message string, width int, style *Style, minWidth int) []string {
	target := max(1, width-style.MinWidth())
	wrapped := text.Wrap(message, target)
	for i := range wrapped {
		wrapped[i] += text.Reset
	}

	rows := style.Render(wrapped, minWidth, 0)
	for i := range rows {
		rows[i] = text.Reset + rows[i] + text.Reset
	}
	return rows
}
