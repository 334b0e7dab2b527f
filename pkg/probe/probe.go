// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package probe answers "can this interpreter module be imported" without the
// core rewriter ever depending on the answer. It shells out to the configured
// interpreter and maps the outcome to a tagged result instead of relying on a
// dynamic module loader. The logger is an explicit parameter so probe
// behavior is observable in tests without capturing process-wide streams.
package probe

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// 🐍 DefaultOptionalModule is the optional accelerator the prober targets
// when no module is named.
const DefaultOptionalModule = "libcst"

// 📊 Result is the tagged outcome of one module probe
type Result struct {
	Module    string
	Available bool
	Version   string // set when Available
	Reason    string // diagnostic when not Available
}

// importSnippet imports the named module and prints its version, or
// "unknown" when the module exposes none.
const importSnippet = `import importlib, sys
m = importlib.import_module(sys.argv[1])
print(getattr(m, "__version__", "unknown"))`

// 🔍 Check probes a single module through the interpreter. A module that
// imports cleanly is available, whatever it might do at a deeper runtime
// stage. Resolution failures carry the interpreter's diagnostic as Reason.
func Check(ctx context.Context, interpreter, module string, logger zerolog.Logger) Result {
	cmd := exec.CommandContext(ctx, interpreter, "-c", importSnippet, module)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		reason := lastLine(stderr.String())
		if reason == "" {
			reason = err.Error()
		}
		logger.Debug().
			Str("module", module).
			Str("interpreter", interpreter).
			Str("reason", reason).
			Msg("module unavailable")
		return Result{Module: module, Reason: reason}
	}

	version := strings.TrimSpace(stdout.String())
	if version == "" {
		version = "unknown"
	}
	logger.Debug().
		Str("module", module).
		Str("version", version).
		Msg("module available")
	return Result{Module: module, Available: true, Version: version}
}

// lastLine returns the final non-empty line of interpreter output, which is
// where Python puts the exception message.
func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
