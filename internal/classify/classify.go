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

// Package classify determines the aggravating context of a function literal.
package classify

import (
	"go/ast"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capturealloc/internal/scope"
)

// Flags describe the lexical context of a function literal.
type Flags struct {
	// InsideGeneric is set when the enclosing function declaration has type parameters.
	InsideGeneric bool

	// InsideLoop is set when the literal is in the body of a for or range statement.
	InsideLoop bool
}

// Classify walks the ancestors of the function literal at lit up to the enclosing
// function declaration.
//
// Only the directly enclosing declaration counts for InsideGeneric, methods of generic
// types are not flagged. In package level initializers the walk ends at the outermost
// function literal, which itself has no flags. Trees deeper than [scope.MaxDepth] have no flags.
func Classify(lit inspector.Cursor) Flags {
	var (
		f      Flags
		nested bool // passed an enclosing function literal
	)

	c := lit
	for range scope.MaxDepth {
		kind, _ := c.ParentEdge()
		parent := c.Parent()

		switch n := parent.Node().(type) {
		case nil, *ast.File:
			if !nested {
				return Flags{}
			}

			return f // Package level initializer, the outermost literal is the boundary

		case *ast.FuncLit:
			nested = true

		case *ast.FuncDecl:
			f.InsideGeneric = n.Type.TypeParams.NumFields() > 0

			return f

		case *ast.ForStmt:
			if kind == edge.ForStmt_Body {
				f.InsideLoop = true
			}

		case *ast.RangeStmt:
			if kind == edge.RangeStmt_Body {
				f.InsideLoop = true
			}
		}

		c = parent
	}

	return Flags{}
}
