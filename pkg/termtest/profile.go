// Package termtest provides terminal environment profiles and output
// snapshots for tests that need to check how ponysay behaves on different
// terminals.
package termtest

import "testing"

// TerminalProfile describes the environment a terminal presents.
type TerminalProfile struct {
	Name    string            // Human-readable terminal name
	EnvVars map[string]string // Environment vars this terminal sets
	Color   bool              // Whether auto color mode should emit color on a TTY
}

// colorEnvVars are the variables that influence color detection. Apply
// blanks every one of them that a profile does not set.
var colorEnvVars = []string{
	"TERM", "TERM_PROGRAM", "COLORTERM", "NO_COLOR",
	"CLICOLOR", "CLICOLOR_FORCE", "TMUX", "GOOGLE_CLOUD_SHELL",
}

// Profiles returns all known terminal profiles.
func Profiles() []TerminalProfile {
	return []TerminalProfile{
		{
			Name:    "Ghostty",
			EnvVars: map[string]string{"TERM_PROGRAM": "ghostty", "TERM": "xterm-ghostty", "COLORTERM": "truecolor"},
			Color:   true,
		},
		{
			Name:    "Kitty",
			EnvVars: map[string]string{"TERM": "xterm-kitty", "COLORTERM": "truecolor"},
			Color:   true,
		},
		{
			Name:    "Apple Terminal",
			EnvVars: map[string]string{"TERM_PROGRAM": "Apple_Terminal", "TERM": "xterm-256color"},
			Color:   true,
		},
		{
			Name:    "tmux",
			EnvVars: map[string]string{"TERM_PROGRAM": "tmux", "TERM": "tmux-256color", "TMUX": "/tmp/tmux-1000/default,1,0"},
			Color:   true,
		},
		{
			Name:    "Linux console",
			EnvVars: map[string]string{"TERM": "linux"},
			Color:   true,
		},
		{
			Name:    "Dumb",
			EnvVars: map[string]string{"TERM": "dumb"},
			Color:   false,
		},
		{
			Name:    "NO_COLOR",
			EnvVars: map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor", "NO_COLOR": "1"},
			Color:   false,
		},
	}
}

// ProfileByName returns the profile matching the given name, or nil if not found.
func ProfileByName(name string) *TerminalProfile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}

// Apply sets the profile's environment for the rest of the test. Color
// related variables the profile does not mention are set empty.
func (p TerminalProfile) Apply(t testing.TB) {
	t.Helper()
	for _, k := range colorEnvVars {
		t.Setenv(k, p.EnvVars[k])
	}
	for k, v := range p.EnvVars {
		t.Setenv(k, v)
	}
}
