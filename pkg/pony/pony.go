// Package pony loads figure templates and composes balloons into them.
package pony

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gitlab.com/tinyland/lab/ponysay/pkg/asset"
)

const (
	// listDepth is how many directory levels List descends into each root.
	listDepth = 3
	bestPony  = "best.pony"

	// AutoName is the name reported when no pony was requested and none
	// could be chosen.
	AutoName = "<auto>"
)

// Asset is a loaded pony file.
type Asset struct {
	Path     string
	Metadata Metadata
	Body     string
}

// Library finds pony files in an ordered list of search roots.
type Library struct {
	Roots  []string
	Logger *slog.Logger // nil discards
}

func (l *Library) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.Logger
}

// Load finds and reads the pony called name.
//
// A name that looks like a path is tried as-is first; then root/name and
// root/name.pony are tried for each root in order. A candidate that is not
// valid UTF-8 is skipped. A candidate that exists but cannot be read is an
// error that carries its path. If nothing matches, the error is an
// *asset.NotFoundError.
func (l *Library) Load(name string) (*Asset, error) {
	logger := l.logger()
	for _, candidate := range pnCandidates(name, l.Roots) {
		if !asset.IsFile(candidate) {
			continue
		}
		raw, err := os.ReadFile(candidate)
		if err != nil {
			return nil, fmt.Errorf("pony: read template: %w", err)
		}
		if !utf8.Valid(raw) {
			logger.Debug("pony: skipping candidate, not valid UTF-8", slog.String("path", candidate))
			continue
		}

		meta, body := ParseMetadata(string(raw))
		logger.Debug("pony: loaded template",
			slog.String("path", candidate),
			slog.Int("tags", len(meta.Tags)))
		return &Asset{Path: candidate, Metadata: meta, Body: body}, nil
	}
	return nil, &asset.NotFoundError{Kind: "pony", Name: name}
}

// List returns the sorted, de-duplicated names of the ponies under the
// library's roots.
func (l *Library) List() []string {
	return asset.Names(l.Roots, listDepth)
}

// Select decides which pony to show. An explicitly requested name wins.
// Otherwise the first best.pony found across the roots is used, with
// symlinks resolved. Failing that, a pony is drawn at random from List;
// a non-nil seed makes the draw reproducible.
func (l *Library) Select(requested string, seed *uint64) (string, error) {
	if strings.TrimSpace(requested) != "" {
		return requested, nil
	}

	logger := l.logger()
	for _, root := range l.Roots {
		candidate := filepath.Join(root, bestPony)
		if !asset.IsFile(candidate) {
			continue
		}
		if resolved, err := filepath.EvalSymlinks(candidate); err == nil {
			candidate = resolved
		}
		logger.Info("pony: selected best.pony", slog.String("path", candidate))
		return candidate, nil
	}

	names := l.List()
	if len(names) == 0 {
		return "", &asset.NotFoundError{Kind: "pony", Name: AutoName}
	}
	name := names[pnRand(seed).IntN(len(names))]
	logger.Debug("pony: selected at random", slog.String("name", name))
	return name, nil
}

func pnCandidates(name string, roots []string) []string {
	var out []string
	if filepath.IsAbs(name) || asset.IsPath(name) {
		out = append(out, name)
	}
	for _, root := range roots {
		out = append(out, filepath.Join(root, name), filepath.Join(root, name+".pony"))
	}
	return out
}

func pnRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
