package balloon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/ponysay/pkg/asset"
	"gitlab.com/tinyland/lab/ponysay/pkg/text"
)

// ---------------------------------------------------------------------------
// Mode / preset tests
// ---------------------------------------------------------------------------

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"say", ModeSay, false},
		{"THINK", ModeThink, false},
		{"", ModeSay, false},
		{"shout", ModeSay, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if ModeThink.String() != "think" || ModeSay.String() != "say" {
		t.Error("Mode.String mismatch")
	}
}

func TestDefaultBounds(t *testing.T) {
	for _, mode := range []Mode{ModeSay, ModeThink} {
		s := Default(mode)
		if s.MinWidth() != 4 {
			t.Errorf("%v MinWidth = %d, want 4", mode, s.MinWidth())
		}
		if s.MinHeight() != 2 {
			t.Errorf("%v MinHeight = %d, want 2", mode, s.MinHeight())
		}
	}
}

func TestDefaultLinks(t *testing.T) {
	say := Default(ModeSay)
	if say.Link() != `\` || say.LinkMirror() != "/" || say.LinkCross() != "X" {
		t.Errorf("say links = %q %q %q", say.Link(), say.LinkMirror(), say.LinkCross())
	}
	think := Default(ModeThink)
	if think.Link() != "o" || think.LinkMirror() != "o" || think.LinkCross() != "o" {
		t.Errorf("think links = %q %q %q", think.Link(), think.LinkMirror(), think.LinkCross())
	}
}

func TestStyleIsImmutable(t *testing.T) {
	g := Glyphs{N: []string{"_"}}
	s := NewStyle(g)
	g.N[0] = "X"
	if got := s.Glyphs().N[0]; got != "_" {
		t.Errorf("style changed through caller slice: N[0] = %q", got)
	}
	copied := s.Glyphs()
	copied.N[0] = "Y"
	if got := s.Glyphs().N[0]; got != "_" {
		t.Errorf("style changed through Glyphs copy: N[0] = %q", got)
	}
}

// ---------------------------------------------------------------------------
// Render tests
// ---------------------------------------------------------------------------

func TestRenderSaySingleLine(t *testing.T) {
	got := Default(ModeSay).Render([]string{"hello"}, 0, 0)
	want := []string{
		" _______ ",
		"< hello >",
		" ------- ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderThinkSingleLine(t *testing.T) {
	got := Default(ModeThink).Render([]string{"hello"}, 0, 0)
	if got[1] != "( hello )" {
		t.Errorf("think message row = %q, want %q", got[1], "( hello )")
	}
}

func TestRenderSayMultiLine(t *testing.T) {
	got := Default(ModeSay).Render([]string{"a", "bcd", "ef"}, 0, 0)
	want := []string{
		" _____ ",
		`/ a   \`,
		"| bcd |",
		`\ ef  /`,
		" ----- ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRowsShareWidth(t *testing.T) {
	lines := []string{"short", "\x1b[31ma colored line\x1b[0m", "日本語", ""}
	for _, mode := range []Mode{ModeSay, ModeThink} {
		rows := Default(mode).Render(lines, 0, 0)
		want := text.VisibleWidth(rows[0])
		for i, r := range rows {
			if w := text.VisibleWidth(r); w != want {
				t.Errorf("%v row %d %q width = %d, want %d", mode, i, r, w, want)
			}
		}
		if len(rows) != len(lines)+Default(mode).MinHeight() {
			t.Errorf("%v rows = %d, want %d", mode, len(rows), len(lines)+2)
		}
	}
}

func TestRenderWideWestGlyphs(t *testing.T) {
	style := NewStyle(Glyphs{
		WW: "|| ", EE: " |",
		NWW: "|| ", NEE: " |",
		W: "||| ", E: " |",
		SWW: "|| ", SEE: " |",
		N: []string{"-"}, S: []string{"-"},
	})
	if style.MinWidth() != 4 {
		t.Fatalf("MinWidth = %d, want 4", style.MinWidth())
	}

	got := style.Render([]string{"ab"}, 0, 0)
	want := []string{"-------", "|| ab |", "-------"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("single line mismatch (-want +got):\n%s", diff)
	}

	rows := style.Render([]string{"ab", "c", "de"}, 0, 0)
	for i, r := range rows {
		if w := text.VisibleWidth(r); w != 8 {
			t.Errorf("row %d %q width = %d, want 8", i, r, w)
		}
	}
}

func TestRenderMinWidth(t *testing.T) {
	got := Default(ModeSay).Render([]string{"hi"}, 12, 0)
	for i, r := range got {
		if w := text.VisibleWidth(r); w != 12 {
			t.Errorf("row %d %q width = %d, want 12", i, r, w)
		}
	}
	if got[1] != "< hi       >" {
		t.Errorf("message row = %q", got[1])
	}
}

func TestRenderMinHeight(t *testing.T) {
	got := Default(ModeSay).Render([]string{"hi"}, 0, 5)
	want := []string{
		" ____ ",
		`/ hi \`,
		"|    |",
		`\    /`,
		" ---- ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDegradesNarrowBorder(t *testing.T) {
	s := NewStyle(Glyphs{
		NW: []string{"<<<<"}, NNW: []string{"[[["}, N: []string{"-"}, NNE: []string{"]]]"}, NE: []string{">>>>"},
	})
	if s.MinWidth() != 8 {
		t.Fatalf("MinWidth = %d, want 8", s.MinWidth())
	}

	got := s.Render([]string{""}, 0, 0)
	if got[0] != "<<<<>>>>" {
		t.Errorf("narrow top row = %q, want %q", got[0], "<<<<>>>>")
	}

	got = s.Render([]string{""}, 20, 0)
	if got[0] != "<<<<[[[------]]]>>>>" {
		t.Errorf("wide top row = %q", got[0])
	}
}

func TestRenderMultiRowPeak(t *testing.T) {
	s := NewStyle(Glyphs{
		NW: []string{"a", "b"}, N: []string{"-"}, NE: []string{"c"},
		WW: "|", EE: "|",
	})
	if s.MinHeight() != 2 {
		t.Fatalf("MinHeight = %d, want 2", s.MinHeight())
	}
	got := s.Render([]string{"xy"}, 0, 0)
	want := []string{"a--c", "b   ", "|xy|"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderBalloonResets(t *testing.T) {
	rows := RenderBalloon("hello", 40, Default(ModeSay), 0)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	want := text.Reset + "< hello" + text.Reset + " >" + text.Reset
	if rows[1] != want {
		t.Errorf("message row = %q, want %q", rows[1], want)
	}
	for i, r := range rows {
		if !strings.HasPrefix(r, text.Reset) || !strings.HasSuffix(r, text.Reset) {
			t.Errorf("row %d not bracketed by resets: %q", i, r)
		}
	}
}

func TestRenderBalloonWrapTarget(t *testing.T) {
	rows := RenderBalloon("a bb ccc dddd", 10, Default(ModeSay), 0)
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5: %q", len(rows), rows)
	}
	for i, r := range rows {
		if w := text.VisibleWidth(r); w > 10 {
			t.Errorf("row %d width %d exceeds 10", i, w)
		}
	}
}

func TestRenderBalloonTinyWidth(t *testing.T) {
	rows := RenderBalloon("abc", 0, Default(ModeSay), 0)
	// target clamps to one cell, so each letter gets its own line
	if len(rows) != 5 {
		t.Errorf("rows = %d, want 5", len(rows))
	}
}

// ---------------------------------------------------------------------------
// Parse tests
// ---------------------------------------------------------------------------

func TestParseContinuationLines(t *testing.T) {
	s, err := Parse(strings.NewReader("\\:\\\n/:/\nX:X\n\nn:_\n: \n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Link() != `\` || s.LinkMirror() != "/" || s.LinkCross() != "X" {
		t.Errorf("links = %q %q %q", s.Link(), s.LinkMirror(), s.LinkCross())
	}
	if diff := cmp.Diff([]string{"_", " "}, s.Glyphs().N); diff != "" {
		t.Errorf("n rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseScalarTakesFirst(t *testing.T) {
	s, err := Parse(strings.NewReader("ww:< \nww:<<\nee: >\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g := s.Glyphs()
	if g.WW != "< " || g.EE != " >" {
		t.Errorf("ww/ee = %q/%q", g.WW, g.EE)
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	s, err := Parse(strings.NewReader("n:_\nbogus:zzz\n:more\nvalue:with:colons\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// the continuation follows n because bogus is not a recognized key
	if diff := cmp.Diff([]string{"_", "more"}, s.Glyphs().N); diff != "" {
		t.Errorf("n rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValueKeepsColons(t *testing.T) {
	s, err := Parse(strings.NewReader("ww::(\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := s.Glyphs().WW; got != ":(" {
		t.Errorf("ww = %q, want %q", got, ":(")
	}
}

func TestParseMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"invalid utf8": "n:\xff\xfe\n",
		"no keys":      "hello world\n:orphan\n",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(content))
			if !errors.Is(err, ErrMalformedStyle) {
				t.Errorf("Parse error = %v, want ErrMalformedStyle", err)
			}
		})
	}
}

func TestParseDerivesBounds(t *testing.T) {
	s, err := Parse(strings.NewReader("ne:___\n:__\nnw:_\nsw:-\ns:-\n:-\n:-\nee: >\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.MinWidth() != 6 {
		t.Errorf("MinWidth = %d, want 6", s.MinWidth())
	}
	if s.MinHeight() != 5 {
		t.Errorf("MinHeight = %d, want 5", s.MinHeight())
	}
}

// ---------------------------------------------------------------------------
// Resolver tests
// ---------------------------------------------------------------------------

const testStyle = "\\:Q\n/:Q\nX:Q\nww:[ \nee: ]\nn:=\n"

func writeStyle(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveEmptyNameIsDefault(t *testing.T) {
	r := Resolver{Mode: ModeThink}
	s, err := r.Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s != Default(ModeThink) {
		t.Error("Resolve(\"\") did not return the think preset")
	}
}

func TestResolveCandidateOrder(t *testing.T) {
	root := t.TempDir()
	writeStyle(t, filepath.Join(root, "fancy.say"), testStyle)
	writeStyle(t, filepath.Join(root, "fancy.balloon"), "\\:B\n")

	s, err := LoadStyle("fancy", []string{root}, ModeSay)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if s.Link() != "Q" {
		t.Errorf("link = %q, want the .say candidate", s.Link())
	}

	s, err = LoadStyle("fancy", []string{root}, ModeThink)
	if err != nil {
		t.Fatalf("LoadStyle think: %v", err)
	}
	if s.Link() != "B" {
		t.Errorf("think link = %q, want the .balloon candidate", s.Link())
	}
}

func TestResolveSkipsMalformedCandidate(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeStyle(t, filepath.Join(first, "fancy"), "n:\xff\n")
	writeStyle(t, filepath.Join(second, "fancy"), testStyle)

	s, err := LoadStyle("fancy", []string{first, second}, ModeSay)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if s.Link() != "Q" {
		t.Errorf("link = %q, want Q from the second root", s.Link())
	}
}

func TestResolveSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "fancy"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeStyle(t, filepath.Join(root, "fancy.balloon"), testStyle)
	if _, err := LoadStyle("fancy", []string{root}, ModeSay); err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
}

func TestResolveExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.style")
	writeStyle(t, path, testStyle)
	s, err := LoadStyle(path, nil, ModeSay)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if s.Link() != "Q" {
		t.Errorf("link = %q", s.Link())
	}
}

func TestResolveNotFound(t *testing.T) {
	_, err := LoadStyle("nope", []string{t.TempDir()}, ModeSay)
	if !errors.Is(err, asset.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	var nf *asset.NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "balloon" || nf.Name != "nope" {
		t.Errorf("NotFoundError = %+v", nf)
	}
}

func TestList(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	writeStyle(t, filepath.Join(a, "round.say"), testStyle)
	writeStyle(t, filepath.Join(a, "round.think"), testStyle)
	writeStyle(t, filepath.Join(b, "sub", "ascii.balloon"), testStyle)
	writeStyle(t, filepath.Join(b, "sub", "too", "deep.balloon"), testStyle)

	got := List([]string{a, b})
	if diff := cmp.Diff([]string{"ascii", "round"}, got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}
