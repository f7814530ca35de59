// Package asset locates pony templates and balloon styles on disk. Both
// kinds live in a list of search roots and are addressed by file stem, so
// discovery and the not-found outcome are shared here.
package asset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNotFound is matched by every NotFoundError via errors.Is.
var ErrNotFound = errors.New("asset not found")

// NotFoundError reports that no candidate file for Name exists in any
// search root.
type NotFoundError struct {
	Kind string // "pony" or "balloon"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsPath reports whether name should be used as a file path rather than
// looked up in the search roots.
func IsPath(name string) bool {
	return strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator)
}

// IsFile reports whether path names an existing regular file. Symlinks are
// followed.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Names walks each root down to maxDepth directory levels and returns the
// sorted, de-duplicated stems of the regular files found. Roots that do not
// exist are skipped. A root that is a symlink to a directory is followed;
// symlinks below the root are not.
func Names(roots []string, maxDepth int) []string {
	var names []string
	for _, root := range roots {
		names = append(names, asWalk(root, maxDepth)...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Stem returns the file name of path without its final extension. A name
// that is all extension, such as ".hidden", is returned whole.
func Stem(path string) string {
	base := filepath.Base(path)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return base
}

// ResolveRoot returns the directory a search root points at, following a
// symlinked root. Anything else is returned unchanged.
func ResolveRoot(root string) string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return root
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		return resolved
	}
	return root
}

func asWalk(root string, maxDepth int) []string {
	var names []string
	root = ResolveRoot(root)
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fs.SkipAll
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1

		if d.IsDir() {
			if depth >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			names = append(names, Stem(path))
		}
		return nil
	})
	return names
}
