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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/capturealloc/internal/config"
	"fillmore-labs.com/capturealloc/internal/run"
)

// Option configures specific behavior of a [New] capturealloc analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithGoStmt is an [Option] to configure whether function literals started as goroutines are analyzed.
func WithGoStmt(enabled bool) Option { return kindOption{kind: config.GoStmt, enabled: enabled} }

// WithDefer is an [Option] to configure whether deferred function literals are analyzed.
func WithDefer(enabled bool) Option { return kindOption{kind: config.Defer, enabled: enabled} }

// WithCallArg is an [Option] to configure whether function literals passed as arguments are analyzed.
func WithCallArg(enabled bool) Option { return kindOption{kind: config.CallArg, enabled: enabled} }

// WithAssign is an [Option] to configure whether function literals bound to variables are analyzed.
func WithAssign(enabled bool) Option { return kindOption{kind: config.Assign, enabled: enabled} }

// WithOther is an [Option] to configure whether function literals in other positions are analyzed.
func WithOther(enabled bool) Option { return kindOption{kind: config.Other, enabled: enabled} }

type kindOption struct {
	kind    config.Kind
	enabled bool
}

func (o kindOption) apply(r *run.Options) {
	r.Kinds.Set(o.kind, o.enabled)
}

func (o kindOption) LogAttr() slog.Attr {
	return slog.Bool(o.kind.String(), o.enabled)
}

// WithConcurrency is an [Option] to limit the number of function literals analyzed in parallel.
// Values below one use GOMAXPROCS.
func WithConcurrency(limit int) Option { return concurrencyOption{limit: limit} }

type concurrencyOption struct{ limit int }

func (o concurrencyOption) apply(r *run.Options) {
	r.Concurrency = o.limit
}

func (o concurrencyOption) LogAttr() slog.Attr {
	return slog.Int("concurrency", o.limit)
}

// WithLogger is an [Option] to set the logger receiving debug output of the analyzer.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
