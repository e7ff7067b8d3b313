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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the capturealloc analyzer by handling common
// boilerplate code for parsing and type-checking Go source fragments.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Source is a parsed and type-checked test source file.
type Source struct {
	Fset *token.FileSet
	File *ast.File
	Pkg  *types.Package
	Info *types.Info
	In   *inspector.Inspector
}

// Parse parses and type checks a Go source file.
// The provided source `src` is automatically prefixed with a `package test` clause.
// This allows testing declaration-level code fragments without manually constructing
// the surrounding package scaffolding.
func Parse(tb testing.TB, src string) Source {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()
	srcFile := wrapSource(src)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	pkg, info := Check(tb, fset, f)

	return Source{
		Fset: fset,
		File: f,
		Pkg:  pkg,
		Info: info,
		In:   inspector.New([]*ast.File{f}),
	}
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:     make(map[ast.Expr]types.TypeAndValue),
		Defs:      make(map[*ast.Ident]types.Object),
		Uses:      make(map[*ast.Ident]types.Object),
		Implicits: make(map[ast.Node]types.Object),
		Scopes:    make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// FuncLits returns cursors for all function literals in source order.
func (s Source) FuncLits() []inspector.Cursor {
	var lits []inspector.Cursor
	for c := range s.In.Root().Preorder((*ast.FuncLit)(nil)) {
		lits = append(lits, c)
	}

	return lits
}

// FuncLit returns the n-th function literal in source order.
func (s Source) FuncLit(tb testing.TB, n int) inspector.Cursor {
	tb.Helper()

	lits := s.FuncLits()
	if n >= len(lits) {
		tb.Fatalf("Can't find function literal %d, only %d present", n, len(lits))
	}

	return lits[n]
}

// Line returns the line of a position.
func (s Source) Line(pos token.Pos) int {
	return s.Fset.Position(pos).Line
}

func wrapSource(src string) *bytes.Buffer {
	const header = "package " + testpkg + "\n\n"

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return &srcFile
}

// NestedSource returns a function with a capturing function literal in a loop,
// nested in depth blocks.
func NestedSource(depth int) string {
	var b strings.Builder

	b.WriteString("func _() {\n\tx := 1\n\t")
	b.WriteString(strings.Repeat("{", depth))
	b.WriteString("for range 1 { _ = func() { _ = x } }")
	b.WriteString(strings.Repeat("}", depth))
	b.WriteString("\n}\n")

	return b.String()
}
