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
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Reporter provides user-friendly feedback about probe outcomes
type Reporter struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewReporter creates a new reporter
func NewReporter(ctx context.Context) *Reporter {
	return &Reporter{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogResult logs one probe result with appropriate prefix and formatting
func (r *Reporter) LogResult(result Result) {
	if result.Available {
		msg := fmt.Sprintf("%s (%s)", result.Module, result.Version)
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
		r.log.Info().Str("module", result.Module).Str("version", result.Version).Msg("module available")
		return
	}

	msg := fmt.Sprintf("%s (%s)", result.Module, result.Reason)
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(msg)
	r.log.Warn().Str("module", result.Module).Str("reason", result.Reason).Msg("module unavailable")
}

// 📊 LogOverall logs the aggregated self-test verdict
func (r *Reporter) LogOverall(passed bool) {
	if passed {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println("self-test passed")
		r.log.Info().Msg("self-test passed")
	} else {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println("self-test failed")
		r.log.Error().Msg("self-test failed")
	}
}
