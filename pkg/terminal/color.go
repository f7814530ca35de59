package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode is the user's choice about color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates s as a ColorMode. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return ColorAuto, fmt.Errorf("terminal: unknown color mode %q (want auto, always or never)", s)
	}
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled decides whether escape sequences should be written to out.
// In auto mode color is off when NO_COLOR is set or when termenv finds no
// color support, which includes out not being a terminal.
func ColorEnabled(mode ColorMode, out io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return ProfileSupportsColor(termenv.NewOutput(out))
}

// ProfileSupportsColor reports whether o's environment-adjusted color
// profile can show any color.
func ProfileSupportsColor(o *termenv.Output) bool {
	return o.EnvColorProfile() != termenv.Ascii
}

// Writer returns out unchanged when color is enabled, or a writer that
// strips escape sequences otherwise.
func Writer(out io.Writer, color bool) io.Writer {
	if color {
		return out
	}
	return stripWriter{w: out}
}

type stripWriter struct {
	w io.Writer
}

// Write strips each chunk independently. Callers write whole renders, so
// sequences are never split across calls.
func (s stripWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(s.w, ansi.Strip(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
