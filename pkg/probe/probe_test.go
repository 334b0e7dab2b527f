package probe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInterpreter writes an executable shell script standing in for the
// Python interpreter. The script sees the probe's arguments as
// $1="-c", $2=<snippet>, $3=<module>.
func fakeInterpreter(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "python3")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		script        string
		module        string
		wantAvailable bool
		wantVersion   string
		wantReason    string
	}{
		{
			name:          "module_available_with_version",
			script:        "echo \"1.2.3\"\n",
			module:        "libcst",
			wantAvailable: true,
			wantVersion:   "1.2.3",
		},
		{
			name:          "module_available_without_version",
			script:        "exit 0\n",
			module:        "pathlib",
			wantAvailable: true,
			wantVersion:   "unknown",
		},
		{
			name:       "module_unavailable",
			script:     "echo \"ModuleNotFoundError: No module named 'libcst'\" >&2\nexit 1\n",
			module:     "libcst",
			wantReason: "ModuleNotFoundError: No module named 'libcst'",
		},
		{
			name:       "module_unavailable_traceback",
			script:     "echo \"Traceback (most recent call last):\" >&2\necho \"ImportError: bad interpreter state\" >&2\nexit 1\n",
			module:     "typing",
			wantReason: "ImportError: bad interpreter state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interpreter := fakeInterpreter(t, tt.script)

			result := Check(context.Background(), interpreter, tt.module, zerolog.Nop())

			assert.Equal(t, tt.module, result.Module)
			assert.Equal(t, tt.wantAvailable, result.Available)
			if tt.wantAvailable {
				assert.Equal(t, tt.wantVersion, result.Version)
				assert.Empty(t, result.Reason)
			} else {
				assert.Equal(t, tt.wantReason, result.Reason)
				assert.Empty(t, result.Version)
			}
		})
	}
}

func TestCheck_MissingInterpreter(t *testing.T) {
	result := Check(context.Background(), filepath.Join(t.TempDir(), "no-such-python"), "os", zerolog.Nop())

	assert.False(t, result.Available)
	assert.NotEmpty(t, result.Reason)
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{name: "empty", output: "", want: ""},
		{name: "single_line", output: "boom\n", want: "boom"},
		{name: "multi_line", output: "first\nsecond\n", want: "second"},
		{name: "trailing_blank_lines", output: "message\n\n\n", want: "message"},
		{name: "only_whitespace", output: "  \n\t\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lastLine(tt.output))
		})
	}
}
