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

// Package rewrite splices the future-annotations directive into a source file
// at a precomputed insertion point and writes the result back. The whole-file
// literal check for the directive is what makes the rewrite idempotent:
// running it a second time over the same file is always a no-op.
package rewrite

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/pyfuture/pkg/scanner"
	"gitlab.com/tozd/go/errors"
)

// 📜 DefaultDirective is the line the tool guarantees is present once per file.
const DefaultDirective = "from __future__ import annotations"

// 📄 SourceFile is one file's path and ordered lines. Each line keeps its
// original terminator so a write-back reproduces untouched lines byte for
// byte. A SourceFile is owned by the processing step for that single file.
type SourceFile struct {
	Path  string
	Lines []string
}

// 📊 Result describes the outcome of rewriting a single file
type Result struct {
	Path            string
	OriginalContent []byte
	ModifiedContent []byte
	WasModified     bool
	Reason          string // set when WasModified is false
}

// 📥 Load reads a file once and splits it into terminator-preserving lines.
func Load(ctx context.Context, path string) (*SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return &SourceFile{Path: path, Lines: SplitLines(content)}, nil
}

// ✂️ SplitLines splits content after every newline, keeping the newline on
// each line. A final chunk without a trailing newline is kept as-is.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	var lines []string
	rest := string(content)
	for {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			lines = append(lines, rest)
			break
		}
		lines = append(lines, rest[:i+1])
		rest = rest[i+1:]
		if rest == "" {
			break
		}
	}
	return lines
}

// 🔄 Apply splices the directive into the file according to the plan. If the
// directive already occurs anywhere in the file's text, the file is left
// untouched and the result reports why.
func Apply(ctx context.Context, file *SourceFile, plan scanner.Plan, directive string) *Result {
	original := []byte(strings.Join(file.Lines, ""))
	result := &Result{
		Path:            file.Path,
		OriginalContent: original,
		ModifiedContent: original,
	}

	if strings.Contains(string(original), directive) {
		result.Reason = "directive already present"
		return result
	}

	inserted := []string{directive + "\n"}
	if plan.NeedsBlank {
		inserted = append(inserted, "\n")
	}

	updated := make([]string, 0, len(file.Lines)+len(inserted))
	updated = append(updated, file.Lines[:plan.Index]...)
	updated = append(updated, inserted...)
	updated = append(updated, file.Lines[plan.Index:]...)

	file.Lines = updated
	result.ModifiedContent = []byte(strings.Join(updated, ""))
	result.WasModified = true
	return result
}

// 💾 WriteAtomic writes content to path via a temp file and rename, so a
// failed write never leaves a half-rewritten source file behind.
func WriteAtomic(ctx context.Context, path string, content []byte) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 🏃 Process loads a file, resolves its insertion point, applies the
// directive, and writes the file back when it changed. This is the whole
// per-file pipeline; failures are wrapped and left to the caller to isolate.
func Process(ctx context.Context, path string, directive string, dryRun bool) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	file, err := Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading %s: %w", path, err)
	}

	plan := scanner.Scan(file.Lines)
	logger.Debug().
		Str("file", path).
		Int("index", plan.Index).
		Bool("needs_blank", plan.NeedsBlank).
		Msg("resolved insertion point")

	result := Apply(ctx, file, plan, directive)
	if !result.WasModified {
		return result, nil
	}

	if dryRun {
		return result, nil
	}

	if err := WriteAtomic(ctx, path, result.ModifiedContent); err != nil {
		return nil, errors.Errorf("writing %s: %w", path, err)
	}

	return result, nil
}
