package balloon

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrMalformedStyle is returned when a style file is not valid UTF-8 or
// sets none of the recognized keys.
var ErrMalformedStyle = errors.New("balloon: malformed style")

var blKnownKeys = map[string]bool{
	`\`: true, "/": true, "X": true,
	"ww": true, "ee": true,
	"nw": true, "nnw": true, "n": true, "nne": true, "ne": true,
	"nee": true, "e": true, "see": true,
	"se": true, "sse": true, "s": true, "ssw": true, "sw": true,
	"sww": true, "w": true, "nww": true,
}

// Parse reads a balloon style definition.
//
// The format is line oriented. "key:value" appends value to key (split at
// the first colon). A line starting with ":" appends to the most recently
// set key, which is how multi-row borders are written. Empty lines and
// unknown keys are ignored. Scalar glyphs take the first value given.
func Parse(r io.Reader) (*Style, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("balloon: read style: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrMalformedStyle)
	}

	values := make(map[string][]string)
	last := ""
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, ":"); ok {
			if last != "" {
				values[last] = append(values[last], rest)
			}
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok || !blKnownKeys[key] {
			continue
		}
		values[key] = append(values[key], value)
		last = key
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no recognized keys", ErrMalformedStyle)
	}

	first := func(key string) string {
		if v := values[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	return NewStyle(Glyphs{
		Link:       first(`\`),
		LinkMirror: first("/"),
		LinkCross:  first("X"),
		WW:         first("ww"),
		EE:         first("ee"),
		NWW:        first("nww"),
		NEE:        first("nee"),
		W:          first("w"),
		E:          first("e"),
		SWW:        first("sww"),
		SEE:        first("see"),
		NW:         values["nw"],
		NNW:        values["nnw"],
		N:          values["n"],
		NNE:        values["nne"],
		NE:         values["ne"],
		SW:         values["sw"],
		SSW:        values["ssw"],
		S:          values["s"],
		SSE:        values["sse"],
		SE:         values["se"],
	}), nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("balloon: open style: %w", err)
	}
	defer f.Close()

	style, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}
