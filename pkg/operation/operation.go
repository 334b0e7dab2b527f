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

// Package operation wires the walker, scanner, and mutator into the annotate
// run: discover files, insert the directive where it is missing, report one
// line per file and a final summary.
package operation

import (
	"context"

	"github.com/walteh/pyfuture/pkg/config"
	"github.com/walteh/pyfuture/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for pyfuture operations
type Operator interface {
	// Annotate walks root and ensures every matching file carries the
	// directive. The returned counters reflect the completed run.
	Annotate(ctx context.Context, root string) (Counters, error)
}

// 📊 Counters is the run bookkeeping: every discovered file is either
// modified or skipped. Files that fail with an I/O error are skips too, but
// are tracked separately so the caller can surface them.
type Counters struct {
	Discovered int
	Modified   int
	Errored    int
}

// Skipped is discovered minus modified.
func (c Counters) Skipped() int {
	return c.Discovered - c.Modified
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the pyfuture configuration
	Config *config.Config
	// Logger is the user-facing console reporter
	Logger *log.Logger
	// DryRun reports what would change without writing anything
	DryRun bool
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	return &operator{
		config: opts.Config,
		logger: opts.Logger,
		dryRun: opts.DryRun,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config *config.Config
	logger *log.Logger
	dryRun bool
}

// Annotate method is implemented in annotate.go
