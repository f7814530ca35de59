package terminal

import (
	"os"
	"testing"
)

// --- Size Tests ---

func TestGetSize_EnvFallback(t *testing.T) {
	// In a test runner the ioctl usually fails (no TTY), so env vars or
	// defaults are returned. When it succeeds we only see positive values.
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "50")

	s := GetSize()
	if s.Cols <= 0 {
		t.Errorf("Size.Cols = %d, want > 0", s.Cols)
	}
	if s.Rows <= 0 {
		t.Errorf("Size.Rows = %d, want > 0", s.Rows)
	}
}

func TestGetSizeFromFd_InvalidFd(t *testing.T) {
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "30")

	// fd 999 is invalid; should fall back to env.
	s := GetSizeFromFd(999)
	if s.Cols != 100 || s.Rows != 30 {
		t.Errorf("Size = %+v, want 100x30", s)
	}
}

func TestGetSizeFromFd_Defaults(t *testing.T) {
	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "")
	os.Unsetenv("COLUMNS")
	os.Unsetenv("LINES")

	s := GetSizeFromFd(999)
	if s.Cols != 80 || s.Rows != 24 {
		t.Errorf("Size = %+v, want 80x24", s)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_VAR", "42")
	if got := envInt("TEST_INT_VAR", 10); got != 42 {
		t.Errorf("envInt = %d, want 42", got)
	}

	t.Setenv("TEST_INT_VAR", "invalid")
	if got := envInt("TEST_INT_VAR", 10); got != 10 {
		t.Errorf("envInt(invalid) = %d, want 10 (fallback)", got)
	}

	t.Setenv("TEST_INT_VAR", "-5")
	if got := envInt("TEST_INT_VAR", 10); got != 10 {
		t.Errorf("envInt(negative) = %d, want 10 (fallback)", got)
	}

	t.Setenv("TEST_INT_VAR", "")
	if got := envInt("TEST_INT_VAR", 10); got != 10 {
		t.Errorf("envInt(empty) = %d, want 10 (fallback)", got)
	}
}
