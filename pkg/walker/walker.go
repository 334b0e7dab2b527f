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

// Package walker discovers candidate source files under a root directory,
// pruning cache and environment directories so nothing beneath them is ever
// yielded or reported.
package walker

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options controls which files the walk yields
type Options struct {
	// Extension is the source-file extension to match (e.g. ".py").
	Extension string

	// IgnoreFragments are path substrings that exclude a whole subtree
	// (byte caches, virtual environments, VCS metadata).
	IgnoreFragments []string

	// ExcludeGlobs are doublestar patterns matched against the path
	// relative to the root; matching files are skipped.
	ExcludeGlobs []string
}

// 🔍 ignored checks whether a path contains any configured ignore fragment.
func (o Options) ignored(path string) bool {
	for _, fragment := range o.IgnoreFragments {
		if fragment == "" {
			continue
		}
		if strings.Contains(path, fragment) {
			return true
		}
	}
	return false
}

// 🔍 excluded checks a relative path against the exclude globs.
func (o Options) excluded(ctx context.Context, relPath string) bool {
	for _, pattern := range o.ExcludeGlobs {
		matched, err := doublestar.Match(pattern, filepath.ToSlash(relPath))
		if err != nil {
			zerolog.Ctx(ctx).Debug().
				Str("pattern", pattern).
				Str("path", relPath).
				Err(err).
				Msg("error matching exclude pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// 🚶 Walk yields every matching file under root, in lexical traversal order,
// through fn. Directories whose path contains an ignore fragment are pruned
// entirely. Unreadable subdirectories are logged and skipped rather than
// aborting the walk; a missing or unreadable root is the caller's problem.
func Walk(ctx context.Context, root string, opts Options, fn func(path string) error) error {
	logger := zerolog.Ctx(ctx)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return errors.Errorf("walking root %s: %w", root, err)
			}
			logger.Warn().Str("path", path).Err(err).Msg("skipping unreadable path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && opts.ignored(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != opts.Extension {
			return nil
		}
		if opts.ignored(path) {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr == nil && opts.excluded(ctx, relPath) {
			logger.Debug().Str("file", path).Msg("file excluded by pattern")
			return nil
		}

		return fn(path)
	})
	if err != nil {
		return errors.Errorf("walking %s: %w", root, err)
	}
	return nil
}
