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

package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/pyfuture/pkg/log"
	"github.com/walteh/pyfuture/pkg/rewrite"
	"github.com/walteh/pyfuture/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Annotate runs the directive insertion over every matching file under
// root. Files are processed strictly one at a time, in traversal order; a
// failure on one file is logged and counted, never fatal to the run. The only
// fatal condition is a root that does not exist or cannot be walked.
func (o *operator) Annotate(ctx context.Context, root string) (Counters, error) {
	logger := zerolog.Ctx(ctx)
	counters := Counters{}

	info, err := os.Stat(root)
	if err != nil {
		return counters, errors.Errorf("root path %s does not exist: %w", root, err)
	}
	if !info.IsDir() {
		return counters, errors.Errorf("root path %s is not a directory", root)
	}

	o.logger.Header(root)

	opts := walker.Options{
		Extension:       o.config.Extension,
		IgnoreFragments: o.config.IgnoreFragments,
		ExcludeGlobs:    o.config.ExcludeGlobs,
	}

	err = walker.Walk(ctx, root, opts, func(path string) error {
		counters.Discovered++
		o.processFile(ctx, root, path, &counters)
		return nil
	})
	if err != nil {
		return counters, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().
		Int("discovered", counters.Discovered).
		Int("modified", counters.Modified).
		Int("errored", counters.Errored).
		Msg("annotate finished")

	o.logger.Summary(counters.Discovered, counters.Modified, counters.Skipped())
	return counters, nil
}

// 📄 processFile rewrites a single file and reports its outcome. Errors stay
// inside this function: the file is reported as a skip and the run goes on.
func (o *operator) processFile(ctx context.Context, root, path string, counters *Counters) {
	display := path
	if rel, err := filepath.Rel(root, path); err == nil {
		display = rel
	}

	result, err := rewrite.Process(ctx, path, o.config.Directive, o.dryRun)
	if err != nil {
		counters.Errored++
		zerolog.Ctx(ctx).Error().Str("file", path).Err(err).Msg("processing file")
		o.logger.LogFileOperation(ctx, log.FileOperation{
			Path:    display,
			Status:  "skipped — error",
			IsError: true,
		})
		return
	}

	if result.WasModified {
		counters.Modified++
		status := "modified"
		if o.dryRun {
			status = "would modify"
		}
		o.logger.LogFileOperation(ctx, log.FileOperation{
			Path:       display,
			Status:     status,
			IsModified: true,
		})
		return
	}

	o.logger.LogFileOperation(ctx, log.FileOperation{
		Path:   display,
		Status: "skipped — " + result.Reason,
	})
}
