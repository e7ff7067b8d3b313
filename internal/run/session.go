// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
	"cmp"
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capturealloc/internal/capture"
	"fillmore-labs.com/capturealloc/internal/classify"
	"fillmore-labs.com/capturealloc/internal/config"
	"fillmore-labs.com/capturealloc/internal/report"
	"fillmore-labs.com/capturealloc/internal/scope"
)

// Session accumulates the diagnostics of a single analysis run.
//
// Analyze may be called concurrently for distinct function literals.
type Session struct {
	fset   *token.FileSet
	info   *types.Info
	kinds  config.Kinds
	logger *slog.Logger

	mu          sync.Mutex
	diagnostics []report.Diagnostic
}

// NewSession creates a [Session] analyzing the requested function literal flavors.
func NewSession(fset *token.FileSet, info *types.Info, kinds config.Kinds, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{fset: fset, info: info, kinds: kinds, logger: logger}
}

// Analyze runs the capture analysis for the function literal at lit and records the diagnostics.
//
// Literals of flavors not requested are skipped. A failure in the analysis of a single
// literal is logged and results in no diagnostics for it.
func (s *Session) Analyze(ctx context.Context, lit inspector.Cursor) {
	if !isFuncLit(lit) || !s.kinds.Enabled(KindOf(lit)) {
		return
	}

	diagnostics, err := s.analyzeSafe(lit)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "Function literal analysis failed",
			slog.String("pos", s.position(lit.Node().Pos())), slog.Any("error", err))

		return
	}

	if len(diagnostics) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.diagnostics = append(s.diagnostics, diagnostics...)
}

// position formats pos for logging.
func (s *Session) position(pos token.Pos) string {
	if s.fset == nil {
		return token.Position{}.String()
	}

	return s.fset.Position(pos).String()
}

// analyzeSafe converts a panic during analysis into an error.
func (s *Session) analyzeSafe(lit inspector.Cursor) (diagnostics []report.Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			diagnostics, err = nil, &AnalysisError{Value: r}
		}
	}()

	return Analyze(s.info, lit), nil
}

// Analyze is the capture analysis of a single function literal.
//
// It builds the scope chain, detects captures, classifies the context and emits
// diagnostics. The result depends only on lit and the read-only type information.
func Analyze(info *types.Info, lit inspector.Cursor) []report.Diagnostic {
	chain := scope.Build(info, lit)

	set := capture.Detect(info, lit, chain)
	if set.Empty() {
		return nil
	}

	flags := classify.Classify(lit)

	return report.Emit(lit.Node().(*ast.FuncLit), chain.Decl(), set, flags)
}

// Diagnostics returns the accumulated diagnostics sorted by position.
//
// Sorting only makes reporting deterministic, the diagnostics are accumulated in no particular order.
func (s *Session) Diagnostics() []report.Diagnostic {
	s.mu.Lock()
	diagnostics := slices.Clone(s.diagnostics)
	s.mu.Unlock()

	slices.SortStableFunc(diagnostics, func(a, b report.Diagnostic) int {
		return cmp.Or(cmp.Compare(a.Pos, b.Pos), cmp.Compare(a.Rule, b.Rule), cmp.Compare(a.Message, b.Message))
	})

	return diagnostics
}
