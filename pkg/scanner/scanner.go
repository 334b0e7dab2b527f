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

// Package scanner decides where the future-annotations directive belongs in a
// Python file. It classifies the leading lines of a file (comments, blank
// lines, the module docstring) with a small state machine instead of a real
// parser, which is enough to find the single well-known insertion point.
package scanner

import (
	"strings"
)

// 🚦 state tracks where the scan currently is in the file preamble
type state int

const (
	stateLeading   state = iota // blank lines, comments, before/after docstring
	stateDocstring              // inside an unterminated triple-quoted string
	stateDone                   // first real statement reached
)

// 📐 Plan is the resolved insertion point for a file
type Plan struct {
	// Index is the 0-based line index to insert before. It never points
	// inside an unterminated docstring and only moves forward during a scan.
	Index int

	// NeedsBlank is true when a non-blank line sits at Index, so the
	// directive should be followed by a single blank line.
	NeedsBlank bool
}

// 🔤 the two conventional triple-quote delimiters
var docstringDelimiters = []string{`"""`, `'''`}

// 🔍 openingDelimiter returns the triple-quote delimiter the trimmed line
// starts with, or "" if it starts with neither.
func openingDelimiter(trimmed string) string {
	for _, delim := range docstringDelimiters {
		if strings.HasPrefix(trimmed, delim) {
			return delim
		}
	}
	return ""
}

// 🔍 isImport reports whether the trimmed line is an import-style statement.
func isImport(trimmed string) bool {
	return strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ")
}

// 🎯 Scan consumes the file's lines once, left to right, and resolves the
// insertion plan. Lines may carry their original terminators; classification
// works on the trimmed text.
//
// The scan halts at the first import statement or at the first ordinary
// statement outside a docstring. Reaching end of file while still in the
// leading block or inside an unterminated docstring leaves the index at its
// last advanced value; the caller inserts there without further validation.
//
// Known limitation, kept on purpose: a docstring whose body contains its own
// delimiter as literal text closes the scan early. This is a line heuristic,
// not a tokenizer.
func Scan(lines []string) Plan {
	current := stateLeading
	delim := ""
	index := 0

scan:
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch current {
		case stateLeading:
			switch {
			case trimmed == "" || strings.HasPrefix(trimmed, "#"):
				// Still in the leading block, keep moving past it.
				index = i + 1

			case openingDelimiter(trimmed) != "":
				delim = openingDelimiter(trimmed)
				if strings.Count(trimmed, delim) >= 2 {
					// One-line docstring, opened and closed here.
					index = i + 1
					delim = ""
				} else {
					// Index stays put until the docstring closes.
					current = stateDocstring
				}

			case isImport(trimmed):
				current = stateDone
				break scan

			default:
				// First ordinary statement with no preamble before it.
				current = stateDone
				break scan
			}

		case stateDocstring:
			if strings.Contains(trimmed, delim) {
				index = i + 1
				delim = ""
				current = stateLeading
			}
		}
	}

	return Plan{
		Index:      index,
		NeedsBlank: index < len(lines) && strings.TrimSpace(lines[index]) != "",
	}
}
