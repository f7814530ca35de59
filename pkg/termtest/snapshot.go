package termtest

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Snapshot captures the rendered output for comparison testing.
type Snapshot struct {
	Name     string // Descriptive name for the snapshot
	Terminal string // Terminal profile name used
	Width    int    // Render width in columns
	Height   int    // Render height in rows
	Content  string // The rendered string
}

// CaptureSnapshot renders content at given dimensions and stores it.
func CaptureSnapshot(name, terminal string, renderFn func(w, h int) string, width, height int) Snapshot {
	return Snapshot{
		Name:     name,
		Terminal: terminal,
		Width:    width,
		Height:   height,
		Content:  renderFn(width, height),
	}
}

// Diff describes a single line difference between two snapshots.
type Diff struct {
	Line     int    // 1-based line number where the difference occurs
	Expected string // The expected line content
	Actual   string // The actual line content
}

// CompareSnapshots checks two snapshots line by line.
// Returns nil if the snapshots are identical.
func CompareSnapshots(expected, actual Snapshot) []Diff {
	expectedLines := ttSplitLines(expected.Content)
	actualLines := ttSplitLines(actual.Content)

	var diffs []Diff
	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			diffs = append(diffs, Diff{Line: i + 1, Expected: eLine, Actual: aLine})
		}
	}
	return diffs
}

// FormatDiff renders a line-oriented diff of two snapshots for test
// failure messages. Removed lines are prefixed with "-", added lines
// with "+", and unchanged lines with a space. Returns "" when the
// snapshots match.
func FormatDiff(expected, actual Snapshot) string {
	if expected.Content == actual.Content {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected.Content, actual.Content)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString("--- " + expected.Name + "\n+++ " + actual.Name + "\n")
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}
	return sb.String()
}

// ttSplitLines splits a string into lines, handling the edge case where
// an empty string should produce a single empty line for comparison.
func ttSplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
