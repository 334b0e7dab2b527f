package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeInterpreter writes an executable shell script standing in for the
// Python interpreter. The probe invokes it as $1="-c", $2=<snippet>,
// $3=<module>.
func fakeInterpreter(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "python3")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

// writeInterpreterConfig writes a config file pointing at the interpreter.
func writeInterpreterConfig(t *testing.T, interpreter string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".pyfuture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interpreter: \""+interpreter+"\"\n"), 0644))
	return path
}

func TestProbeCmd_InterpreterFromConfig(t *testing.T) {
	interpreter := fakeInterpreter(t, "echo \"1.2.3\"\n")
	cfgPath := writeInterpreterConfig(t, interpreter)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"probe", "somemodule", "--config", cfgPath})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
}

func TestProbeCmd_FlagOverridesConfig(t *testing.T) {
	failing := fakeInterpreter(t, "echo \"boom\" >&2\nexit 1\n")
	passing := fakeInterpreter(t, "echo \"9.9.9\"\n")
	cfgPath := writeInterpreterConfig(t, failing)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"probe", "somemodule", "--config", cfgPath, "--interpreter", passing})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
}

func TestProbeCmd_UnavailableModuleFails(t *testing.T) {
	failing := fakeInterpreter(t, "echo \"ModuleNotFoundError: No module named 'x'\" >&2\nexit 1\n")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"probe", "x", "--interpreter", failing})

	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestSelfTestCmd_InterpreterFromConfig(t *testing.T) {
	interpreter := fakeInterpreter(t, "echo \"3.12.0\"\n")
	cfgPath := writeInterpreterConfig(t, interpreter)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"selftest", "--config", cfgPath})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
}

func TestSelfTestCmd_MissingModuleFails(t *testing.T) {
	failing := fakeInterpreter(t, `if [ "$3" = "libcst" ]; then
  echo "ModuleNotFoundError: No module named 'libcst'" >&2
  exit 1
fi
echo "3.12.0"
`)
	cfgPath := writeInterpreterConfig(t, failing)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"selftest", "--config", cfgPath})

	require.Error(t, cmd.ExecuteContext(context.Background()))
}
