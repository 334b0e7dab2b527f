package walker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root, making parent directories as needed.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		opts  Options
		want  []string // relative paths expected, in traversal order
	}{
		{
			name: "matches_extension_recursively",
			files: map[string]string{
				"a.py":       "",
				"sub/b.py":   "",
				"notes.txt":  "",
				"sub/c.pyc":  "",
				"sub/d/e.py": "",
			},
			opts: Options{Extension: ".py"},
			want: []string{"a.py", "sub/b.py", "sub/d/e.py"},
		},
		{
			name: "prunes_ignore_fragments",
			files: map[string]string{
				"a.py":                "",
				"__pycache__/b.py":    "",
				"pkg/.venv/lib/c.py":  "",
				"pkg/real.py":         "",
				"deep/__pycache__/d/e.py": "",
			},
			opts: Options{
				Extension:       ".py",
				IgnoreFragments: []string{"__pycache__", ".venv"},
			},
			want: []string{"a.py", "pkg/real.py"},
		},
		{
			name: "exclude_globs",
			files: map[string]string{
				"a.py":            "",
				"generated/b.py":  "",
				"generated/c/d.py": "",
			},
			opts: Options{
				Extension:    ".py",
				ExcludeGlobs: []string{"generated/**"},
			},
			want: []string{"a.py"},
		},
		{
			name:  "empty_tree",
			files: map[string]string{},
			opts:  Options{Extension: ".py"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files)

			var got []string
			err := Walk(context.Background(), root, tt.opts, func(path string) error {
				rel, relErr := filepath.Rel(root, path)
				require.NoError(t, relErr)
				got = append(got, filepath.ToSlash(rel))
				return nil
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	err := Walk(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{Extension: ".py"}, func(string) error {
		t.Fatal("callback must not run for a missing root")
		return nil
	})
	require.Error(t, err)
}
