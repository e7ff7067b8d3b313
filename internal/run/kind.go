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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capturealloc/internal/config"
)

// KindOf determines the flavor of the function literal at lit from its position in the syntax tree.
func KindOf(lit inspector.Cursor) config.Kind {
	c := lit
	for {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.ParenExpr_X:
			c = c.Parent() // (func() { ... })()
			continue

		case edge.CallExpr_Fun:
			switch call, _ := c.Parent().ParentEdge(); call {
			case edge.GoStmt_Call:
				return config.GoStmt

			case edge.DeferStmt_Call:
				return config.Defer
			}

		case edge.CallExpr_Args:
			return config.CallArg

		case edge.AssignStmt_Rhs, edge.ValueSpec_Values:
			return config.Assign
		}

		return config.Other
	}
}

// isFuncLit reports whether the cursor points to a function literal.
func isFuncLit(c inspector.Cursor) bool {
	_, ok := c.Node().(*ast.FuncLit)

	return ok
}
