// Package balloon models speech and thought balloon border styles and
// composes wrapped message lines into bordered balloons.
//
// A style is a set of compass-named glyphs. Scalar glyphs (links, message
// side edges) are single strings; the corners and edges of the top and
// bottom borders are ordered lists of rows so a style can draw peaks that
// span several lines. Looking up a row index that a list does not have
// yields the empty string.
package balloon

import (
	"fmt"
	"slices"
	"strings"

	"gitlab.com/tinyland/lab/ponysay/pkg/text"
)

// Mode selects between speech and thought balloons.
type Mode int

const (
	ModeSay Mode = iota
	ModeThink
)

func (m Mode) String() string {
	if m == ModeThink {
		return "think"
	}
	return "say"
}

// ParseMode converts "say" or "think" (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "say":
		return ModeSay, nil
	case "think":
		return ModeThink, nil
	default:
		return ModeSay, fmt.Errorf("balloon: unknown mode %q (want say or think)", s)
	}
}

// Glyphs is the raw glyph set a Style is built from.
//
// Link, LinkMirror and LinkCross are the connector glyphs drawn between the
// balloon and the figure. WW/EE flank a single-line message; NWW/NEE,
// W/E and SWW/SEE flank the first, interior and last lines of a multi-line
// message. The N* lists build the top border and the S* lists the bottom
// border, one entry per row.
type Glyphs struct {
	Link, LinkMirror, LinkCross string

	WW, EE   string
	NWW, NEE string
	W, E     string
	SWW, SEE string

	NW, NNW, N, NNE, NE []string
	SW, SSW, S, SSE, SE []string
}

// Style is an immutable balloon style with its derived size bounds.
// Construct one with NewStyle, Default or Parse.
type Style struct {
	g         Glyphs
	minWidth  int
	minHeight int
}

// NewStyle copies g and computes the style's minimum width and height.
func NewStyle(g Glyphs) *Style {
	g = g.clone()
	s := &Style{g: g}

	widest := max(
		blWidestRow(g.NE),
		text.VisibleWidth(g.NEE),
		text.VisibleWidth(g.E),
		text.VisibleWidth(g.SEE),
		blWidestRow(g.SW),
		text.VisibleWidth(g.EE),
	)
	s.minWidth = 2 * widest
	s.minHeight = max(len(g.NW), len(g.NNW), len(g.N), len(g.NNE), len(g.NE)) +
		max(len(g.SW), len(g.SSW), len(g.S), len(g.SSE), len(g.SE))
	return s
}

// MinWidth is the horizontal space the borders need around the message.
func (s *Style) MinWidth() int { return s.minWidth }

// MinHeight is the number of border rows above and below the message.
func (s *Style) MinHeight() int { return s.minHeight }

// Glyphs returns a copy of the style's glyph set.
func (s *Style) Glyphs() Glyphs { return s.g.clone() }

// Link returns the connector glyph used for the "$\$" template token.
func (s *Style) Link() string { return s.g.Link }

// LinkMirror returns the connector glyph used for the "$/$" template token.
func (s *Style) LinkMirror() string { return s.g.LinkMirror }

// LinkCross returns the connector glyph used for the "$X$" template token.
func (s *Style) LinkCross() string { return s.g.LinkCross }

func (g Glyphs) clone() Glyphs {
	g.NW, g.NNW, g.N, g.NNE, g.NE = slices.Clone(g.NW), slices.Clone(g.NNW), slices.Clone(g.N), slices.Clone(g.NNE), slices.Clone(g.NE)
	g.SW, g.SSW, g.S, g.SSE, g.SE = slices.Clone(g.SW), slices.Clone(g.SSW), slices.Clone(g.S), slices.Clone(g.SSE), slices.Clone(g.SE)
	return g
}

// row returns list[j], or "" when the list has no such row.
func row(list []string, j int) string {
	if j < 0 || j >= len(list) {
		return ""
	}
	return list[j]
}

func blWidestRow(list []string) int {
	widest := 0
	for _, r := range list {
		widest = max(widest, text.VisibleWidth(r))
	}
	return widest
}
