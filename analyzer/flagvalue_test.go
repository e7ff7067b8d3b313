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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/capturealloc/analyzer"
	"fillmore-labs.com/capturealloc/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Kind
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.Defer,
			args:    []string{"-go"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.GoStmt,
			args:    []string{"-go=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.GoStmt,
			args:    []string{"-go=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var kinds config.Kinds
			kinds.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.GoStmt
			fv := NewKindValue(&kinds, value)
			fs.Var(fv, "go", "analyze goroutines")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if kinds.Enabled(value) != tt.want {
				t.Errorf("GoStmt enabled = %v, want %v", kinds.Enabled(value), tt.want)
			}

			if tt.initial != value && !kinds.Enabled(tt.initial) {
				t.Errorf("%s was reset", tt.initial)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var kinds config.Kinds

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewKindValue(&kinds, config.Defer), "defer", "analyze deferred literals")

	if err := fs.Parse([]string{"-defer=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	kinds := config.DefaultKinds()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewKindValue(&kinds, config.Assign)
	fs.Var(fv, "assign", "analyze assigned literals")

	const expectedUsage = `
  -assign
    	analyze assigned literals (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{"generated", "go", "defer", "arg", "assign", "other", "concurrency"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Missing flag -%s", name)
		}
	}

	if err := a.Flags.Parse([]string{"-defer=false", "-generated"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := a.Flags.Lookup("defer").Value.String(); got != "false" {
		t.Errorf("-defer = %s, want false", got)
	}

	if got := a.Flags.Lookup("generated").Value.String(); got != "true" {
		t.Errorf("-generated = %s, want true", got)
	}
}
