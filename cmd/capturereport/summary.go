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

package main

import (
	"cmp"
	"fmt"
	"go/token"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/capturealloc/internal/report"
)

// finding is a single reported diagnostic.
type finding struct {
	position token.Position
	rule     report.RuleID
	severity report.Severity
	message  string
}

// Column widths of the rule and severity columns.
const (
	ruleWidth     = len("internal")
	severityWidth = len("warning")
)

// summary collects the findings of all analyzed packages.
//
// Test variants of a package report the same diagnostics again, duplicates are dropped.
type summary struct {
	base     string
	findings []finding
	seen     map[finding]struct{}
}

func newSummary(base string) *summary {
	return &summary{base: base, seen: make(map[finding]struct{})}
}

// Add records a diagnostic at the given position.
func (s *summary) Add(pos token.Position, d analysis.Diagnostic) {
	id := report.RuleID(d.Category)

	severity := report.Warning // Unregistered categories are internal errors
	if rule, ok := report.Lookup(id); ok {
		severity = rule.Severity
	}

	f := finding{position: pos, rule: id, severity: severity, message: d.Message}
	if _, ok := s.seen[f]; ok {
		return
	}

	s.seen[f] = struct{}{}
	s.findings = append(s.findings, f)
}

// Len returns the number of findings.
func (s *summary) Len() int {
	return len(s.findings)
}

// ruleCount is the number of findings of a rule.
type ruleCount struct {
	id       report.RuleID
	title    string
	severity report.Severity
	count    int
}

// Counts returns the number of findings per rule, registered rules first.
func (s *summary) Counts() []ruleCount {
	rules := report.Rules()

	counts := make([]ruleCount, 0, len(rules))
	for _, r := range rules {
		counts = append(counts, ruleCount{id: r.ID, title: r.Title, severity: r.Severity})
	}

	for _, f := range s.findings {
		i := slices.IndexFunc(counts, func(c ruleCount) bool { return c.id == f.rule })
		if i < 0 {
			i = len(counts)
			counts = append(counts, ruleCount{id: f.rule, title: "Internal error", severity: f.severity})
		}

		counts[i].count++
	}

	return counts
}

// sorted returns the findings ordered by file, line, column and rule.
func (s *summary) sorted() []finding {
	findings := slices.Clone(s.findings)
	slices.SortFunc(findings, func(a, b finding) int {
		return cmp.Or(
			cmp.Compare(a.position.Filename, b.position.Filename),
			cmp.Compare(a.position.Line, b.position.Line),
			cmp.Compare(a.position.Column, b.position.Column),
			cmp.Compare(a.rule, b.rule),
			cmp.Compare(a.message, b.message),
		)
	})

	return findings
}

// Render formats the findings and the per rule summary.
func (s *summary) Render(st styles) string {
	var b strings.Builder

	if len(s.findings) == 0 {
		b.WriteString(st.good.Render("No capture allocations found"))
		b.WriteByte('\n')

		return b.String()
	}

	findings := s.sorted()

	positions := make([]string, len(findings))
	width := 0
	for i, f := range findings {
		positions[i] = s.position(f.position)
		width = max(width, len(positions[i]))
	}

	b.WriteString(st.title.Render("Capture allocations"))
	b.WriteString("\n\n")

	for i, f := range findings {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			st.position.Width(width).Render(positions[i]),
			st.severity(f.severity).Width(ruleWidth).Render(string(f.rule)),
			st.message.Render(f.message))
	}

	b.WriteByte('\n')
	b.WriteString(st.title.Render("Summary"))
	b.WriteString("\n\n")

	for _, c := range s.Counts() {
		style := st.muted
		if c.count > 0 {
			style = st.severity(c.severity)
		}

		fmt.Fprintf(&b, "%s  %s  %s  %s\n",
			st.rule.Width(ruleWidth).Render(string(c.id)),
			style.Width(severityWidth).Render(c.severity.String()),
			style.Width(5).Align(lipgloss.Right).Render(strconv.Itoa(c.count)),
			st.message.Render(c.title))
	}

	fmt.Fprintf(&b, "\n%s\n", st.muted.Render(fmt.Sprintf("%d findings", len(findings))))

	return b.String()
}

// position formats a position relative to the base directory.
func (s *summary) position(pos token.Position) string {
	if s.base != "" && filepath.IsAbs(pos.Filename) {
		if rel, err := filepath.Rel(s.base, pos.Filename); err == nil && !strings.HasPrefix(rel, "..") {
			pos.Filename = rel
		}
	}

	return pos.String()
}
