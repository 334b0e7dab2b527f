package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_AnnotatesTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("import os\n"), 0644))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{root})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	content, err := os.ReadFile(filepath.Join(root, "a.py"))
	require.NoError(t, err)
	assert.Equal(t, "from __future__ import annotations\n\nimport os\n", string(content))
}

func TestRootCmd_MissingRoot(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope")})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRootCmd_DryRunLeavesFilesAlone(t *testing.T) {
	root := t.TempDir()
	original := "import os\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte(original), 0644))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--dry-run", root})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	content, err := os.ReadFile(filepath.Join(root, "a.py"))
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestRootCmd_CustomDirective(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("x = 1\n"), 0644))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--directive", "from __future__ import division", root})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	content, err := os.ReadFile(filepath.Join(root, "a.py"))
	require.NoError(t, err)
	assert.Equal(t, "from __future__ import division\n\nx = 1\n", string(content))
}
