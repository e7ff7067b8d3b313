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

package report

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/capturealloc/internal/capture"
	"fillmore-labs.com/capturealloc/internal/classify"
)

// Diagnostic is a finding of the capture analysis.
type Diagnostic struct {
	Rule     RuleID
	Severity Severity
	Pos, End token.Pos
	Message  string
}

// Emit produces the diagnostics for a capturing function literal.
//
// A frame diagnostic is placed where the outermost captured variable is declared,
// a capture diagnostic at the literal and, inside generic functions, an additional
// generic diagnostic at the literal. An empty capture set produces no diagnostics.
func Emit(lit *ast.FuncLit, decl *ast.FuncDecl, set capture.Set, flags classify.Flags) []Diagnostic {
	if set.Empty() {
		return nil
	}

	names := captureNames(set)

	diagnostics := make([]Diagnostic, 0, 3)

	outer := set.Outermost()
	anchor := outer.Anchor()

	diagnostics = append(diagnostics, newDiagnostic(RuleFrame, anchor,
		"Capture frame for %s allocated in %s scope", names, outer.Name()))

	format := "Function literal captures %s, a frame is synthesized to hold it%s"
	if set.Len() > 1 {
		format = "Function literal captures %s, a frame is synthesized to hold them%s"
	}

	var iteration string
	if flags.InsideLoop {
		iteration = " on every loop iteration"
	}

	diagnostics = append(diagnostics, newDiagnostic(RuleCapture, lit, format, names, iteration))

	if flags.InsideGeneric && decl != nil {
		diagnostics = append(diagnostics, newDiagnostic(RuleGeneric, lit,
			"Function literal in generic function '%s' allocates a capture frame per instantiation, consider extracting it",
			decl.Name.Name))
	}

	return diagnostics
}

func newDiagnostic(id RuleID, rng analysis.Range, format string, args ...any) Diagnostic {
	rule, _ := Lookup(id)

	msg := fmt.Appendf(nil, format, args...)
	msg = fmt.Appendf(msg, " (ca:%s)", id)

	return Diagnostic{
		Rule:     id,
		Severity: rule.Severity,
		Pos:      rng.Pos(),
		End:      rng.End(),
		Message:  string(msg),
	}
}

// Analysis converts the diagnostic for reporting to an [analysis.Pass].
func (d Diagnostic) Analysis() analysis.Diagnostic {
	rule, _ := Lookup(d.Rule)

	return analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.End,
		Category: string(d.Rule),
		Message:  d.Message,
		URL:      rule.URL,
	}
}

// captureNames formats the captured variables, marking the receiver.
func captureNames(set capture.Set) string {
	names := make([]string, 0, set.Len())
	for c := range set.All() {
		name := "'" + c.Var.Name() + "'"
		if c.Receiver {
			name += " (receiver)"
		}

		names = append(names, name)
	}

	return concatNames(names)
}

// concatNames formats a list of quoted names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteString(name) // ignore error
	}

	return allNames.String()
}
