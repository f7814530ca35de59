package pony

import (
	"strings"
	"unicode"
)

const pnHeaderFence = "$$$"

// Metadata is the optional header of a pony file. The header sits between
// two "$$$" lines at the top of the file. "TAG: value" lines whose tag is
// made of upper-case letters and underscores are collected per tag; every
// other header line is kept as a comment.
type Metadata struct {
	Tags     map[string][]string `yaml:"tags,omitempty"`
	Comments []string            `yaml:"comments,omitempty"`
}

// Tag returns the first value recorded for tag, or "".
func (m Metadata) Tag(tag string) string {
	if v := m.Tags[tag]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// ParseMetadata splits raw into its metadata header and template body. A
// leading byte order mark is dropped. Files without a header are all body;
// a header that is never closed leaves the whole file as body.
func ParseMetadata(raw string) (Metadata, string) {
	text := strings.TrimPrefix(raw, "\ufeff")
	meta := Metadata{Tags: make(map[string][]string)}

	first, rest, found := strings.Cut(text, "\n")
	if !found || pnTrimEnd(first) != pnHeaderFence {
		return meta, text
	}

	for rest != "" {
		line, next, _ := strings.Cut(rest, "\n")
		line = strings.TrimSuffix(line, "\r")
		if pnTrimEnd(line) == pnHeaderFence {
			return meta, next
		}
		meta.pnAddHeaderLine(line)
		rest = next
	}
	return meta, text
}

func (m *Metadata) pnAddHeaderLine(line string) {
	tag, value, ok := strings.Cut(line, ":")
	tag = strings.TrimSpace(tag)
	if ok && pnIsTag(tag) {
		m.Tags[tag] = append(m.Tags[tag], strings.TrimSpace(value))
		return
	}
	m.Comments = append(m.Comments, line)
}

func pnIsTag(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < 'A' || c > 'Z') && c != '_' {
			return false
		}
	}
	return true
}

func pnTrimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
