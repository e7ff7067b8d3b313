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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "fillmore-labs.com/capturealloc/internal/astutil"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		text string
		want bool
	}{
		{"//nolint:capturealloc", true},
		{"// nolint:capturealloc", true},
		{"//nolint:errcheck,CaptureAlloc", true},
		{"//nolint:all", true},
		{"//nolint:errcheck", false},
		{"// capturealloc", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
				t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.want)
			}
		})
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by hand. DO NOT EDIT.

package test

func f() {
	_ = func() {} //nolint:capturealloc
	_ = func() {}
}
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	cf := NewCurrentFile(fset, f)

	if !cf.Valid() || !cf.Generated() || cf.Name() != "gen.go" {
		t.Errorf("Unexpected file info valid=%t generated=%t name=%q", cf.Valid(), cf.Generated(), cf.Name())
	}

	var lits []*ast.FuncLit
	ast.Inspect(f, func(n ast.Node) bool {
		if lit, ok := n.(*ast.FuncLit); ok {
			lits = append(lits, lit)
		}

		return true
	})

	if len(lits) != 2 {
		t.Fatalf("Got %d function literals, want 2", len(lits))
	}

	if !cf.NoLintComment(lits[0].Pos()) {
		t.Error("Expected nolint comment on first literal")
	}

	if cf.NoLintComment(lits[1].Pos()) {
		t.Error("Unexpected nolint comment on second literal")
	}

	if (CurrentFile{}).Valid() {
		t.Error("Zero value is valid")
	}
}
