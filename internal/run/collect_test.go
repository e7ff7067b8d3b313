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
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capturealloc/internal/config"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	const src = `package test

func f(x int) {
	_ = func() int { return x }
	_ = func() int { return x } //nolint:capturealloc
}

//nolint:capturealloc
func g(x int) {
	_ = func() int { return x }
}
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	// A file without position information in the file set
	broken := &ast.File{Name: ast.NewIdent("broken")}

	var reported []analysis.Diagnostic
	p := &analysis.Pass{
		Fset:   fset,
		Report: func(d analysis.Diagnostic) { reported = append(reported, d) },
	}

	r := DefaultOptions()
	lits := r.collect(t.Context(), p, inspector.New([]*ast.File{broken, f}))

	if len(lits) != 1 {
		t.Errorf("Got %d function literals, want 1", len(lits))
	}

	if len(reported) != 1 {
		t.Fatalf("Got %d reported diagnostics, want 1", len(reported))
	}

	if d := reported[0]; d.Category != internalCategory || !strings.Contains(d.Message, "File broken without valid info") {
		t.Errorf("Got diagnostic %q in category %q, want internal error", d.Message, d.Category)
	}
}

func TestCollectGenerated(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by test. DO NOT EDIT.

package test

var f = func() {}
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	p := &analysis.Pass{Fset: fset, Report: func(analysis.Diagnostic) {}}
	in := inspector.New([]*ast.File{f})

	r := DefaultOptions()
	if lits := r.collect(t.Context(), p, in); len(lits) != 0 {
		t.Errorf("Got %d function literals in generated file, want 0", len(lits))
	}

	r.Behavior.Enable(config.IncludeGenerated)
	if lits := r.collect(t.Context(), p, in); len(lits) != 1 {
		t.Errorf("Got %d function literals with generated files included, want 1", len(lits))
	}
}
