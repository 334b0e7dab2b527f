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

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete pyfuture configuration
type Config struct {
	Directive       string   `json:"directive,omitempty" yaml:"directive,omitempty" hcl:"directive,optional"`                       // Line inserted into each file
	Extension       string   `json:"extension,omitempty" yaml:"extension,omitempty" hcl:"extension,optional"`                       // Source-file extension to match
	IgnoreFragments []string `json:"ignore_fragments,omitempty" yaml:"ignore_fragments,omitempty" hcl:"ignore_fragments,optional"` // Path substrings that prune subtrees
	ExcludeGlobs    []string `json:"exclude_globs,omitempty" yaml:"exclude_globs,omitempty" hcl:"exclude_globs,optional"`           // Extra glob excludes
	Interpreter     string   `json:"interpreter,omitempty" yaml:"interpreter,omitempty" hcl:"interpreter,optional"`                 // Interpreter used by probe/selftest
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Directive: "from __future__ import annotations",
		Extension: ".py",
		IgnoreFragments: []string{
			"__pycache__",
			".venv",
			"venv",
			".tox",
			".git",
			".mypy_cache",
			"node_modules",
		},
		Interpreter: "python3",
	}
}

// 🗂️ candidate config file names, checked in order at the run root
var candidateNames = []string{
	".pyfuture.yaml",
	".pyfuture.yml",
	".pyfuture.json",
	".pyfuture.hcl",
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOrDefault loads a config file found at the run root, falling back to
// the built-in defaults when none exists.
func LoadOrDefault(ctx context.Context, root string) (*Config, error) {
	for _, name := range candidateNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return Load(ctx, path)
		}
	}

	zerolog.Ctx(ctx).Debug().Str("root", root).Msg("no config file found, using defaults")
	return Default(), nil
}

// 🔍 Validate checks the configuration and fills in unset defaults
func (cfg *Config) Validate() error {
	defaults := Default()

	if cfg.Directive == "" {
		cfg.Directive = defaults.Directive
	}
	if strings.ContainsAny(cfg.Directive, "\r\n") {
		return errors.Errorf("directive must be a single line")
	}

	if cfg.Extension == "" {
		cfg.Extension = defaults.Extension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		return errors.Errorf("extension must start with a dot: %q", cfg.Extension)
	}

	if cfg.IgnoreFragments == nil {
		cfg.IgnoreFragments = defaults.IgnoreFragments
	}
	if cfg.Interpreter == "" {
		cfg.Interpreter = defaults.Interpreter
	}

	return nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
