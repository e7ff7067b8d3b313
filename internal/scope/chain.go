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
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/inspector"
)

// MaxDepth bounds the number of ancestors visited when walking outward from a function literal.
const MaxDepth = 1000

// Chain is the sequence of lexical scopes from a function literal outward
// to its enclosing function declaration.
//
// The zero value is an empty chain, used when no enclosing declaration exists.
type Chain struct {
	scopes []*Scope // innermost first
	decl   *ast.FuncDecl
	recv   *types.Var
}

// Build constructs the scope chain of the function literal at lit.
//
// Every ancestor with a scope recorded in info contributes the variables declared
// before the literal. The walk stops at the first [ast.FuncDecl]. In package level
// initializers the outermost function literal is the boundary, so that literal itself
// and trees deeper than [MaxDepth] yield an empty chain.
func Build(info *types.Info, lit inspector.Cursor) Chain {
	pos := lit.Node().Pos()

	var scopes []*Scope

	c := lit
	for range MaxDepth {
		switch n := c.Node().(type) {
		case nil, *ast.File:
			return literalChain(scopes) // No enclosing declaration

		case *ast.FuncDecl:
			scopes = append(scopes, newScope(Func, n, info.Scopes[n.Type], pos))
			link(scopes)

			return Chain{scopes: scopes, decl: n, recv: receiver(info, n)}

		case *ast.FuncLit:
			if c != lit {
				scopes = append(scopes, newScope(FuncLit, n, info.Scopes[n.Type], pos))
			}

		case *ast.ForStmt, *ast.RangeStmt:
			scopes = append(scopes, newScope(Loop, n, info.Scopes[n], pos))

		default:
			if ts, ok := info.Scopes[n]; ok {
				scopes = append(scopes, newScope(Block, n, ts, pos))
			}
		}

		c = c.Parent()
	}

	return Chain{} // Too deep
}

// literalChain ends a chain at the outermost enclosing function literal.
// Scopes outside of it are dropped, there is no declaration and no receiver.
func literalChain(scopes []*Scope) Chain {
	for i := len(scopes) - 1; i >= 0; i-- {
		if scopes[i].Kind != FuncLit {
			continue
		}

		scopes = scopes[:i+1]
		link(scopes)

		return Chain{scopes: scopes}
	}

	return Chain{}
}

// link sets parent pointers and levels of an innermost-first scope list.
func link(scopes []*Scope) {
	last := len(scopes) - 1
	for i, s := range scopes {
		s.Level = last - i
		if i < last {
			s.Parent = scopes[i+1]
		}
	}
}

// receiver returns the named receiver variable of a method declaration.
func receiver(info *types.Info, decl *ast.FuncDecl) *types.Var {
	if decl.Recv == nil || len(decl.Recv.List) == 0 || len(decl.Recv.List[0].Names) == 0 {
		return nil
	}

	v, _ := info.Defs[decl.Recv.List[0].Names[0]].(*types.Var)

	return v
}

// Empty reports whether no enclosing function declaration or function literal was found.
func (c Chain) Empty() bool {
	return len(c.scopes) == 0
}

// Decl returns the enclosing function declaration, nil in package level initializers.
func (c Chain) Decl() *ast.FuncDecl {
	return c.decl
}

// Receiver returns the receiver variable of the enclosing method, if any.
func (c Chain) Receiver() *types.Var {
	return c.recv
}

// Len returns the number of scopes in the chain.
func (c Chain) Len() int {
	return len(c.scopes)
}

// All yields the scopes from innermost to outermost.
func (c Chain) All() iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		for _, s := range c.scopes {
			if !yield(s) {
				return
			}
		}
	}
}

// Resolve finds the scope declaring v by walking outward by name.
//
// The innermost scope declaring v's name wins. When that declaration is a different
// object, v is not reachable through the chain and Resolve returns nil.
func (c Chain) Resolve(v *types.Var) *Scope {
	name := v.Name()
	for _, s := range c.scopes {
		switch decl := s.Lookup(name); decl {
		case nil:
			continue

		case v:
			return s

		default:
			return nil // Shadowed
		}
	}

	return nil
}
