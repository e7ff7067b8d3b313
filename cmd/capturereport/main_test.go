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
	"bytes"
	"errors"
	"go/token"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/capturealloc/internal/config"
	"fillmore-labs.com/capturealloc/internal/report"
)

func TestKindsValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{"single", "go", "go", nil},
		{"list", "defer, go", "go,defer", nil},
		{"all", "all", "go,defer,arg,assign,other", nil},
		{"empty", "", "", nil},
		{"unknown", "go,loop", "go,defer,arg,assign,other", config.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := newKindsValue()

			err := v.Set(tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Set(%q) = %v, want %v", tt.value, err, tt.wantErr)
			}

			if got := v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindsOptions(t *testing.T) {
	t.Parallel()

	v := newKindsValue()
	if err := v.Set("arg"); err != nil {
		t.Fatal(err)
	}

	got := v.Options().LogValue().String()
	for _, want := range []string{"go=false", "defer=false", "arg=true", "assign=false", "other=false"} {
		if !strings.Contains(got, want) {
			t.Errorf("Options %q do not contain %q", got, want)
		}
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	s := newSummary("/src")

	pos := token.Position{Filename: "/src/a/a.go", Line: 3, Column: 9}
	s.Add(pos, analysis.Diagnostic{Category: string(report.RuleCapture), Message: "Function literal captures 'x'"})
	s.Add(pos, analysis.Diagnostic{Category: string(report.RuleCapture), Message: "Function literal captures 'x'"})
	s.Add(pos, analysis.Diagnostic{Category: string(report.RuleGeneric), Message: "Function literal in generic function"})
	s.Add(token.Position{Filename: "/src/a/a.go", Line: 2, Column: 2},
		analysis.Diagnostic{Category: "internal", Message: "File without valid info"})

	if got, want := s.Len(), 3; got != want {
		t.Fatalf("Got %d findings, want %d", got, want)
	}

	counts := map[report.RuleID]int{}
	for _, c := range s.Counts() {
		counts[c.id] = c.count
	}

	want := map[report.RuleID]int{report.RuleFrame: 0, report.RuleCapture: 1, report.RuleGeneric: 1, "internal": 1}
	for id, n := range want {
		if counts[id] != n {
			t.Errorf("Got %d findings of %s, want %d", counts[id], id, n)
		}
	}

	var buf bytes.Buffer
	out := s.Render(newStyles(lipgloss.NewRenderer(&buf)))

	for _, want := range []string{"a/a.go:3:9", "Function literal captures 'x'", "Summary", "3 findings"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output does not contain %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "a/a.go:2:2") > strings.Index(out, "a/a.go:3:9") {
		t.Errorf("Findings not sorted by position:\n%s", out)
	}
}

func TestSummaryEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := newSummary("").Render(newStyles(lipgloss.NewRenderer(&buf)))

	if !strings.Contains(out, "No capture allocations found") {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestRootCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--kinds", "arg,assign,other", "./testdata/sample"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v\n%s", err, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"Capture frame for 'f' and 'v' allocated in function scope",
		"generic function 'Apply'",
		"3 findings",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRootCommandInvalidKinds(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--kinds", "loop"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), config.ErrUnknownKind.Error()) {
		t.Errorf("Got error %v, want %v", err, config.ErrUnknownKind)
	}
}
