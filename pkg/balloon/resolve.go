package balloon

import (
	"io"
	"log/slog"
	"path/filepath"

	"gitlab.com/tinyland/lab/ponysay/pkg/asset"
)

// listDepth is how many directory levels List descends into each root.
const listDepth = 2

// Resolver finds named balloon styles in an ordered list of search roots.
type Resolver struct {
	Roots  []string
	Mode   Mode
	Logger *slog.Logger // nil discards
}

// Resolve returns the style called name. An empty name yields the default
// style for the resolver's mode.
//
// A name that looks like a path is tried as-is first. Then, for each root
// in order, root/name, root/name.<mode> and root/name.balloon are tried.
// The first candidate that is a regular file and parses wins; a candidate
// that cannot be opened or parsed is skipped. If nothing matches, the error
// is an *asset.NotFoundError.
func (r *Resolver) Resolve(name string) (*Style, error) {
	if name == "" {
		return Default(r.Mode), nil
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, candidate := range blCandidates(name, r.Roots, r.Mode) {
		if !asset.IsFile(candidate) {
			continue
		}
		style, err := ParseFile(candidate)
		if err != nil {
			logger.Debug("balloon: skipping candidate",
				slog.String("path", candidate),
				slog.String("error", err.Error()))
			continue
		}
		logger.Debug("balloon: loaded style", slog.String("path", candidate))
		return style, nil
	}
	return nil, &asset.NotFoundError{Kind: "balloon", Name: name}
}

// LoadStyle resolves name against roots for mode with a discarding logger.
func LoadStyle(name string, roots []string, mode Mode) (*Style, error) {
	r := Resolver{Roots: roots, Mode: mode}
	return r.Resolve(name)
}

// List returns the sorted, de-duplicated names of the styles under roots.
func List(roots []string) []string {
	return asset.Names(roots, listDepth)
}

func blCandidates(name string, roots []string, mode Mode) []string {
	var out []string
	if filepath.IsAbs(name) || asset.IsPath(name) {
		out = append(out, name)
	}
	for _, root := range roots {
		out = append(out,
			filepath.Join(root, name),
			filepath.Join(root, name+"."+mode.String()),
			filepath.Join(root, name+".balloon"),
		)
	}
	return out
}
