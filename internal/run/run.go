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
	"context"
	"fmt"
	"go/ast"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capturealloc/internal/astutil"
	"fillmore-labs.com/capturealloc/internal/config"
	"fillmore-labs.com/capturealloc/internal/report"
)

// Run executes the capturealloc analyzer's pipeline.
//
// The result is the []report.Diagnostic reported to the pass, sorted by position.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("capturealloc: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CaptureAlloc")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	if r.Kinds.Empty() {
		return []report.Diagnostic(nil), nil // Nothing requested
	}

	// Stage 1: Select function literals in eligible files and functions
	lits := r.collect(ctx, p, in)

	// Stage 2: Analyze every literal in parallel
	session := NewSession(p.Fset, p.TypesInfo, r.Kinds, r.Logger)
	r.analyze(ctx, session, lits)

	// Stage 3: Report
	diagnostics := session.Diagnostics()
	for _, d := range diagnostics {
		p.Report(d.Analysis())
	}

	return diagnostics, nil
}

// collect returns the function literals of all analyzed files.
//
// Generated files (unless requested), files and functions with a nolint doc comment
// and literals followed by a nolint comment are skipped.
func (r *Options) collect(ctx context.Context, p *analysis.Pass, in *inspector.Inspector) []inspector.Cursor {
	defer trace.StartRegion(ctx, "Collect").End()

	types := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
	}

	var lits []inspector.Cursor

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			reportInternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		f.Inspect(types, func(c inspector.Cursor) bool {
			switch n := c.Node().(type) {
			case *ast.FuncDecl:
				// Skip functions with nolint comment
				return n.Body != nil && !astutil.DocHasNoLint(n.Doc)

			case *ast.FuncLit:
				if !currentFile.NoLintComment(n.Pos()) {
					lits = append(lits, c)
				}
			}

			return true
		})
	}

	return lits
}

// analyze runs the session over all literals with bounded parallelism.
func (r *Options) analyze(ctx context.Context, session *Session, lits []inspector.Cursor) {
	defer trace.StartRegion(ctx, "Analyze").End()

	limit := r.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for _, lit := range lits {
		g.Go(func() error {
			session.Analyze(ctx, lit)

			return nil
		})
	}

	_ = g.Wait() // Failures of single literals are absorbed by the session
}
