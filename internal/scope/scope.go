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

package scope

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
)

// Kind classifies a lexical scope.
type Kind uint8

const (
	// Block is a block, if, switch or case scope.
	Block Kind = iota

	// Loop is the header scope of a for or range statement.
	// Its variables are allocated once per iteration.
	Loop

	// FuncLit is the parameter and body scope of an enclosing function literal.
	FuncLit

	// Func is the scope of the enclosing function or method declaration.
	Func
)

// Scope is a lexical scope enclosing an analyzed function literal.
type Scope struct {
	// Kind is the scope kind.
	Kind Kind

	// Node is the syntax node opening the scope. For Func and FuncLit
	// scopes this is the *ast.FuncDecl or *ast.FuncLit, not its type.
	Node ast.Node

	// Parent is the enclosing scope, nil for the declaration scope.
	Parent *Scope

	// Level is the nesting level, 0 for the declaration scope.
	Level int

	// vars holds variables declared directly in this scope before the
	// analyzed literal, ordered by declaration position.
	vars []*types.Var
}

// newScope collects the variables of a [types.Scope] declared before pos.
func newScope(kind Kind, node ast.Node, ts *types.Scope, pos token.Pos) *Scope {
	s := &Scope{Kind: kind, Node: node}
	if ts == nil {
		return s
	}

	for _, name := range ts.Names() {
		v, ok := ts.Lookup(name).(*types.Var)
		if !ok || !v.Pos().IsValid() || v.Pos() >= pos {
			continue
		}

		s.vars = append(s.vars, v)
	}

	slices.SortFunc(s.vars, func(a, b *types.Var) int { return int(a.Pos() - b.Pos()) })

	return s
}

// Names returns the declared variable names in declaration order.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.vars))
	for _, v := range s.vars {
		names = append(names, v.Name())
	}

	return names
}

// Lookup returns the variable declared with the given name in this scope.
func (s *Scope) Lookup(name string) *types.Var {
	if i := slices.IndexFunc(s.vars, func(v *types.Var) bool { return v.Name() == name }); i >= 0 {
		return s.vars[i]
	}

	return nil
}

// Name returns a human-readable name for the scope, as used in diagnostics.
func (s *Scope) Name() string {
	switch s.Kind {
	case Func:
		return "function"

	case FuncLit:
		return "function literal"

	case Loop:
		if _, ok := s.Node.(*ast.RangeStmt); ok {
			return "range"
		}

		return "for"
	}

	switch s.Node.(type) {
	case *ast.BlockStmt:
		return "block"

	case *ast.CaseClause:
		return "case"

	case *ast.CommClause:
		return "select case"

	case *ast.IfStmt:
		return "if"

	case *ast.SwitchStmt:
		return "switch"

	case *ast.TypeSwitchStmt:
		return "type switch"

	default:
		return astutil.NodeDescription(s.Node)
	}
}

// Anchor returns the node where the variables of this scope come to life.
//
// For function scopes this is the first statement of the body, for loops the
// loop statement itself (per-iteration variables) and for blocks the first
// statement of the block. Statements with init declarations (if, switch) are
// their own anchor.
func (s *Scope) Anchor() ast.Node {
	switch n := s.Node.(type) {
	case *ast.FuncDecl:
		return firstStmt(n.Body, n.Body.List)

	case *ast.FuncLit:
		return firstStmt(n.Body, n.Body.List)

	case *ast.BlockStmt:
		return firstStmt(n, n.List)

	case *ast.CaseClause:
		return firstStmt(n, n.Body)

	case *ast.CommClause:
		return firstStmt(n, n.Body)

	default:
		return n
	}
}

func firstStmt(n ast.Node, list []ast.Stmt) ast.Node {
	if len(list) == 0 {
		return n
	}

	return list[0]
}
