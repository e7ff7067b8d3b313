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

package gclplugin

import (
	"errors"
	"fmt"

	"fillmore-labs.com/capturealloc/analyzer"
)

// ErrInvalidSettings is returned for settings outside their valid range.
var ErrInvalidSettings = errors.New("invalid capturealloc settings")

// Settings represents the configuration options of the linter plugin created by [New].
type Settings struct {
	// Go enables analysis of function literals started as goroutines.
	Go *bool `json:"go,omitzero"`
	// Defer enables analysis of deferred function literals.
	Defer *bool `json:"defer,omitzero"`
	// Arg enables analysis of function literals passed as call arguments.
	Arg *bool `json:"arg,omitzero"`
	// Assign enables analysis of function literals bound to variables.
	Assign *bool `json:"assign,omitzero"`
	// Other enables analysis of function literals in other positions.
	Other *bool `json:"other,omitzero"`
	// Concurrency limits the number of function literals analyzed in parallel.
	Concurrency *int `json:"concurrency,omitzero"`
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	if s.Concurrency != nil && *s.Concurrency < 0 {
		return fmt.Errorf("%w: negative concurrency %d", ErrInvalidSettings, *s.Concurrency)
	}

	for _, enabled := range [...]*bool{s.Go, s.Defer, s.Arg, s.Assign, s.Other} {
		if enabled == nil || *enabled {
			return nil
		}
	}

	return fmt.Errorf("%w: every function literal flavor is disabled", ErrInvalidSettings)
}

// Options converts [Settings] into a list of [analyzer.Option] for the capturealloc analyzer.
// Only explicitly set (non-nil) settings are applied.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Go, analyzer.WithGoStmt)
	opts = appendOption(opts, s.Defer, analyzer.WithDefer)
	opts = appendOption(opts, s.Arg, analyzer.WithCallArg)
	opts = appendOption(opts, s.Assign, analyzer.WithAssign)
	opts = appendOption(opts, s.Other, analyzer.WithOther)
	opts = appendOption(opts, s.Concurrency, analyzer.WithConcurrency)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
