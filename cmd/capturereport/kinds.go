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
	"strings"

	"github.com/spf13/pflag"

	"fillmore-labs.com/capturealloc/analyzer"
	"fillmore-labs.com/capturealloc/internal/config"
)

// kindsValue is a [pflag.Value] selecting the analyzed function literal flavors.
type kindsValue struct {
	kinds config.Kinds
}

var _ pflag.Value = (*kindsValue)(nil)

func newKindsValue() kindsValue {
	return kindsValue{kinds: config.DefaultKinds()}
}

// String implements [pflag.Value].
func (v *kindsValue) String() string {
	var names []string
	for k := range v.kinds.All() {
		names = append(names, k.String())
	}

	return strings.Join(names, ",")
}

// Set implements [pflag.Value]. It accepts a comma separated list of flavors, "all" selects every flavor.
func (v *kindsValue) Set(s string) error {
	var selected config.Kinds

	for name := range strings.SplitSeq(s, ",") {
		switch name = strings.TrimSpace(name); name {
		case "":
			continue

		case "all":
			selected = config.DefaultKinds()

		default:
			k, err := config.ParseKind(name)
			if err != nil {
				return err
			}

			selected.Enable(k)
		}
	}

	v.kinds = selected

	return nil
}

// Type implements [pflag.Value].
func (v *kindsValue) Type() string { return "kinds" }

// Options converts the selection into analyzer options.
func (v *kindsValue) Options() analyzer.Options {
	return analyzer.Options{
		analyzer.WithGoStmt(v.kinds.Enabled(config.GoStmt)),
		analyzer.WithDefer(v.kinds.Enabled(config.Defer)),
		analyzer.WithCallArg(v.kinds.Enabled(config.CallArg)),
		analyzer.WithAssign(v.kinds.Enabled(config.Assign)),
		analyzer.WithOther(v.kinds.Enabled(config.Other)),
	}
}

func kindNames() []string {
	var names []string
	for k := range config.DefaultKinds().All() {
		names = append(names, k.String())
	}

	return append(names, "all")
}
