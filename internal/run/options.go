// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"log/slog"

	"fillmore-labs.com/capturealloc/internal/config"
)

// Options represent configuration options for the capturealloc analyzer.
type Options struct {
	// Kinds are the function literal flavors to analyze.
	Kinds config.Kinds

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Concurrency limits the number of function literals analyzed in parallel.
	// Zero or negative values default to GOMAXPROCS.
	Concurrency int

	// Logger receives debug output. Nil defaults to [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Kinds:    config.DefaultKinds(),
		Behavior: config.DefaultBehavior(),
	}
}
