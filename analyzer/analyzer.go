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

package analyzer

import (
	"reflect"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/capturealloc/internal/report"
	"fillmore-labs.com/capturealloc/internal/run"
)

const (
	name = "capturealloc"
	url  = "https://pkg.go.dev/fillmore-labs.com/capturealloc/analyzer"
)

// New creates a new instance of the capturealloc analyzer, configured by [Option] values.
//
// Flags registered on the returned analyzer override the options. Use the [Analyzer]
// variable for command line tools.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:       name,
		Doc:        doc(),
		URL:        url,
		Run:        r.Run,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		ResultType: reflect.TypeFor[[]Diagnostic](),
	}

	registerFlags(&a.Flags, r)

	return a
}

// Diagnostic is a capture finding. The analyzer result is a []Diagnostic
// sorted by position, for use by dependent analyzers and drivers.
type Diagnostic = report.Diagnostic

// RuleID identifies the rule of a [Diagnostic].
type RuleID = report.RuleID

// Rule identifiers of the capturealloc diagnostics.
const (
	RuleFrame   = report.RuleFrame
	RuleCapture = report.RuleCapture
	RuleGeneric = report.RuleGeneric
)

// Analyzer is a pre-configured *[analysis.Analyzer] for detecting capture frame allocations.
var Analyzer = New()

// doc returns the analyzer documentation, listing the diagnostic rules.
func doc() string {
	var b strings.Builder

	b.WriteString("report hidden capture frame allocations of function literals\n\n")
	b.WriteString("Function literals referencing variables of enclosing scopes make the compiler\n")
	b.WriteString("allocate a frame holding the captured variables. Rules:\n")

	for _, r := range report.Rules() {
		b.WriteString("\n  ")
		b.WriteString(string(r.ID))
		b.WriteString(" (")
		b.WriteString(r.Severity.String())
		b.WriteString("): ")
		b.WriteString(r.Title)
	}

	return b.String()
}
