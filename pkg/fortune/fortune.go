// Package fortune picks a random entry from fortune(6) style databases.
//
// A database is a text file whose entries are separated by lines holding a
// single "%". Offensive databases are named with a "-o" suffix and are only
// used when asked for; ".dat" index files and dot-files are ignored.
package fortune

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gitlab.com/tinyland/lab/ponysay/pkg/asset"
)

var (
	// ErrNoSources means no candidate database file was found.
	ErrNoSources = errors.New("fortune: no fortune sources found")
	// ErrNoFortunes means every database found was empty.
	ErrNoFortunes = errors.New("fortune: no fortunes available in sources")
)

// DefaultSearchPaths are the directories scanned when a Config sets none.
var DefaultSearchPaths = []string{
	"testdata/fortunes",
	"/usr/share/games/fortunes",
	"/usr/share/fortune",
}

// Config controls which databases are read and how an entry is drawn.
type Config struct {
	// IncludeOffensive admits databases whose names end in "-o".
	IncludeOffensive bool
	// EqualFiles gives every database the same chance regardless of size.
	// Otherwise each entry across all databases is equally likely.
	EqualFiles bool
	// Seed makes the draw reproducible when set.
	Seed *uint64
	// Sources names databases or directories to read. Each one is used
	// as-is when it exists, or else looked up under every search path.
	// Empty means every database under SearchPaths.
	Sources     []string
	SearchPaths []string
	Logger      *slog.Logger
}

type db struct {
	path    string
	entries []string
}

// Pick returns one fortune chosen according to cfg.
func Pick(cfg Config) (string, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.SearchPaths == nil {
		cfg.SearchPaths = DefaultSearchPaths
	}

	paths := ftResolveSources(cfg)
	if len(paths) == 0 {
		return "", ErrNoSources
	}

	var dbs []db
	total := 0
	for _, p := range paths {
		d, err := ftLoad(p)
		if err != nil {
			return "", err
		}
		if len(d.entries) == 0 {
			continue
		}
		dbs = append(dbs, d)
		total += len(d.entries)
	}
	if len(dbs) == 0 {
		return "", ErrNoFortunes
	}

	rng := ftRand(cfg.Seed)
	var chosen db
	if cfg.EqualFiles {
		chosen = dbs[rng.IntN(len(dbs))]
	} else {
		target := rng.IntN(total)
		for _, d := range dbs {
			chosen = d
			if target < len(d.entries) {
				break
			}
			target -= len(d.entries)
		}
	}

	i := rng.IntN(len(chosen.entries))
	logger.Debug("fortune: selected entry",
		slog.String("source", chosen.path),
		slog.Int("index", i),
		slog.Int("databases", len(dbs)))
	return chosen.entries[i], nil
}

// Split breaks a database into its entries. Surrounding newlines are
// trimmed from each entry and empty entries are dropped.
func Split(content string) []string {
	var out []string
	var cur []string
	flush := func() {
		if entry := strings.Trim(strings.Join(cur, "\n"), "\n"); entry != "" {
			out = append(out, entry)
		}
		cur = cur[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "%" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

// ftResolveSources returns the sorted, de-duplicated database files cfg
// refers to.
func ftResolveSources(cfg Config) []string {
	var found []string
	collect := func(path string) {
		found = append(found, ftCollect(path, cfg.IncludeOffensive)...)
	}

	if len(cfg.Sources) == 0 {
		for _, root := range cfg.SearchPaths {
			collect(root)
		}
	} else {
		for _, src := range cfg.Sources {
			if ftExists(src) {
				collect(src)
				continue
			}
			for _, root := range cfg.SearchPaths {
				if candidate := filepath.Join(root, src); ftExists(candidate) {
					collect(candidate)
				}
			}
		}
	}

	slices.Sort(found)
	return slices.Compact(found)
}

func ftCollect(path string, includeOffensive bool) []string {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if info.Mode().IsRegular() {
		if ftIsCandidate(filepath.Base(path), includeOffensive) {
			return []string{path}
		}
		return nil
	}
	if !info.IsDir() {
		return nil
	}

	// Walk the resolved directory but report paths under the name we were
	// given, so a symlinked search path is descended into.
	walkRoot := asset.ResolveRoot(path)
	var out []string
	_ = filepath.WalkDir(walkRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() || !ftIsCandidate(d.Name(), includeOffensive) {
			return nil
		}
		if rel, relErr := filepath.Rel(walkRoot, p); relErr == nil {
			p = filepath.Join(path, rel)
		}
		out = append(out, p)
		return nil
	})
	return out
}

func ftIsCandidate(name string, includeOffensive bool) bool {
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".dat") {
		return false
	}
	if !includeOffensive && strings.HasSuffix(name, "-o") {
		return false
	}
	return true
}

func ftLoad(path string) (db, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return db{}, fmt.Errorf("fortune: read database: %w", err)
	}
	content := strings.ToValidUTF8(string(raw), "\uFFFD")
	return db{path: path, entries: Split(content)}, nil
}

func ftExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func ftRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
