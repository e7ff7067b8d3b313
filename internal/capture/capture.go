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

// Package capture detects variables captured by function literals.
package capture

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capturealloc/internal/scope"
)

// Capture is a variable of an enclosing scope referenced by a function literal.
type Capture struct {
	// Var is the captured variable.
	Var *types.Var

	// Scope is the scope declaring Var.
	Scope *scope.Scope

	// Receiver is set when Var is the receiver of the enclosing method.
	Receiver bool

	// Pos is the position of the first reference.
	Pos token.Pos
}

// Set is the ordered set of captures of a single function literal.
type Set struct {
	captures []Capture
}

// Detect determines the variables the function literal at lit captures from
// the scopes in chain.
//
// Identifiers in nested function literals are part of the body. References to
// variables declared inside lit, package level variables and struct fields are not
// captures.
func Detect(info *types.Info, lit inspector.Cursor, chain scope.Chain) Set {
	fun, ok := lit.Node().(*ast.FuncLit)
	if !ok || chain.Empty() {
		return Set{}
	}

	var (
		s    Set
		seen = make(map[*types.Var]struct{})
		recv = chain.Receiver()
	)

	body := lit.ChildAt(edge.FuncLit_Body, -1)
	for c := range body.Preorder((*ast.Ident)(nil)) {
		id := c.Node().(*ast.Ident)
		if id.Name == "_" {
			continue
		}

		v, ok := info.Uses[id].(*types.Var)
		if !ok || v.IsField() {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}

		if declaredIn(fun, v) {
			continue // Parameter or local of the literal itself
		}

		declScope := chain.Resolve(v)
		if declScope == nil {
			continue // Package level or unresolved
		}

		s.captures = append(s.captures, Capture{
			Var:      v,
			Scope:    declScope,
			Receiver: v == recv,
			Pos:      id.NamePos,
		})
	}

	return s
}

// declaredIn reports whether v is declared within the function literal.
func declaredIn(fun *ast.FuncLit, v *types.Var) bool {
	pos := v.Pos()

	return fun.Pos() <= pos && pos < fun.End()
}

// Empty reports whether nothing is captured.
func (s Set) Empty() bool {
	return len(s.captures) == 0
}

// Len returns the number of captured variables.
func (s Set) Len() int {
	return len(s.captures)
}

// All yields the captures in order of first appearance.
func (s Set) All() iter.Seq[Capture] {
	return func(yield func(Capture) bool) {
		for _, c := range s.captures {
			if !yield(c) {
				return
			}
		}
	}
}

// Names returns the captured variable names in order of first appearance.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.captures))
	for _, c := range s.captures {
		names = append(names, c.Var.Name())
	}

	return names
}

// Lookup returns the capture of the variable with the given name.
func (s Set) Lookup(name string) (Capture, bool) {
	for _, c := range s.captures {
		if c.Var.Name() == name {
			return c, true
		}
	}

	return Capture{}, false
}

// Outermost returns the outermost scope declaring a captured variable,
// which is where the capture frame is allocated.
func (s Set) Outermost() *scope.Scope {
	var outer *scope.Scope
	for _, c := range s.captures {
		if outer == nil || c.Scope.Level < outer.Level {
			outer = c.Scope
		}
	}

	return outer
}
