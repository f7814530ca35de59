// Package render produces the complete ponysay output: a message in a
// balloon, spliced into a pony.
package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/ponysay/pkg/balloon"
	"gitlab.com/tinyland/lab/ponysay/pkg/pony"
	"gitlab.com/tinyland/lab/ponysay/pkg/text"
)

// ErrNoMessage is returned when the message is empty or only whitespace.
var ErrNoMessage = errors.New("render: no message to show")

// DefaultWrapWidth is the balloon width used when Options.WrapWidth is not
// positive.
const DefaultWrapWidth = 40

// Options describes one render.
type Options struct {
	Message string

	// Pony is a pony name or path. Empty selects best.pony or a random
	// pony from PonyPaths.
	Pony      string
	PonyPaths []string
	// Seed makes random pony selection reproducible.
	Seed *uint64

	// Balloon is a style name or path. Empty uses the built-in style for
	// Mode.
	Balloon      string
	BalloonPaths []string
	Mode         balloon.Mode

	// WrapWidth is the balloon width in columns, borders included. A
	// width hint on the template's anchor raises it.
	WrapWidth int

	Logger *slog.Logger
}

// Result is a finished render together with what went into it.
type Result struct {
	Output string
	Pony   *pony.Asset
	Style  *balloon.Style
}

// Render runs the whole pipeline and returns the text to print.
func Render(opts Options) (string, error) {
	res, err := Compose(opts)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Compose is Render that also reports the pony and style it used.
func Compose(opts Options) (*Result, error) {
	if strings.TrimSpace(opts.Message) == "" {
		return nil, ErrNoMessage
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	lib := pony.Library{Roots: opts.PonyPaths, Logger: logger}
	name, err := lib.Select(opts.Pony, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("render: select pony: %w", err)
	}
	asset, err := lib.Load(name)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	resolver := balloon.Resolver{Roots: opts.BalloonPaths, Mode: opts.Mode, Logger: logger}
	style, err := resolver.Resolve(opts.Balloon)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	width := opts.WrapWidth
	if width <= 0 {
		width = DefaultWrapWidth
	}
	minWidth := pony.AnchorWidth(asset.Body)

	logger.Info("render: composing",
		slog.String("pony", asset.Path),
		slog.String("balloon", rnOr(opts.Balloon, "<default>")),
		slog.String("mode", opts.Mode.String()),
		slog.Int("width", width))

	rows := balloon.RenderBalloon(opts.Message, width, style, minWidth)
	out := text.Reset + pony.InsertBalloon(asset.Body, rows, style)
	return &Result{Output: out, Pony: asset, Style: style}, nil
}

func rnOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
