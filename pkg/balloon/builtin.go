package balloon

var (
	blSayStyle   = NewStyle(blSayGlyphs())
	blThinkStyle = NewStyle(blThinkGlyphs())
)

// Default returns the built-in style for mode. The returned style is shared
// and, like every Style, immutable.
func Default(mode Mode) *Style {
	if mode == ModeThink {
		return blThinkStyle
	}
	return blSayStyle
}

func blSayGlyphs() Glyphs {
	g := blBorders()
	g.Link, g.LinkMirror, g.LinkCross = `\`, "/", "X"
	g.WW, g.EE = "< ", " >"
	g.NWW, g.NEE = "/ ", ` \`
	g.W, g.E = "| ", " |"
	g.SWW, g.SEE = `\ `, " /"
	return g
}

func blThinkGlyphs() Glyphs {
	g := blBorders()
	g.Link, g.LinkMirror, g.LinkCross = "o", "o", "o"
	g.WW, g.EE = "( ", " )"
	g.NWW, g.NEE = "( ", " )"
	g.W, g.E = "( ", " )"
	g.SWW, g.SEE = "( ", " )"
	return g
}

// blBorders is the top and bottom border shared by both presets.
func blBorders() Glyphs {
	return Glyphs{
		NW: []string{" _"}, NNW: []string{"_"}, N: []string{"_"}, NNE: []string{"_"}, NE: []string{"_ "},
		SW: []string{" -"}, SSW: []string{"-"}, S: []string{"-"}, SSE: []string{"-"}, SE: []string{"- "},
	}
}
