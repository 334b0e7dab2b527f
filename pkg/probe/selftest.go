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

package probe

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// 🧪 DefaultSelfTestModules is the fixed list the installation self-test
// verifies: the interpreter-side modules the rewritten output relies on, plus
// the optional accelerator.
var DefaultSelfTestModules = []string{
	"__future__",
	"typing",
	"dataclasses",
	"pathlib",
	DefaultOptionalModule,
}

// 🏃 SelfTest probes every module in the list and returns one result per
// module, in input order. Probes fan out concurrently; the harness is
// independent of the strictly sequential annotate run.
func SelfTest(ctx context.Context, interpreter string, modules []string, logger zerolog.Logger) []Result {
	results := make([]Result, len(modules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, module := range modules {
		i, module := i, module
		g.Go(func() error {
			results[i] = Check(gctx, interpreter, module, logger)
			return nil
		})
	}
	_ = g.Wait() // probes report failure through results, never through errors

	return results
}

// ✅ AllPassed reports whether every probe in the results succeeded.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Available {
			return false
		}
	}
	return true
}
