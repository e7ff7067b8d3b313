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

package report

import "slices"

// RuleID is the stable identifier of a diagnostic rule.
type RuleID string

// The rule identifiers are part of the public contract.
const (
	// RuleFrame marks where a capture frame is allocated.
	RuleFrame RuleID = "frame"

	// RuleCapture marks a function literal capturing variables.
	RuleCapture RuleID = "capture"

	// RuleGeneric marks a capturing function literal in a generic function.
	RuleGeneric RuleID = "generic"
)

// Severity is the severity level of a rule.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// Info is an informational diagnostic.
	Info Severity = iota // info

	// Warning is a diagnostic recommending a change.
	Warning // warning
)

// Rule is the registration metadata of a diagnostic rule.
type Rule struct {
	ID       RuleID
	Title    string
	Severity Severity
	URL      string
}

const docURL = "https://pkg.go.dev/fillmore-labs.com/capturealloc/analyzer#hdr-Rules"

var rules = [...]Rule{
	{
		ID:       RuleFrame,
		Title:    "Capture frame allocation",
		Severity: Info,
		URL:      docURL,
	},
	{
		ID:       RuleCapture,
		Title:    "Function literal captures variables",
		Severity: Info,
		URL:      docURL,
	},
	{
		ID:       RuleGeneric,
		Title:    "Capturing function literal in generic function",
		Severity: Warning,
		URL:      docURL,
	},
}

// Rules returns a copy of the registered rules in emission order.
func Rules() []Rule {
	return slices.Clone(rules[:])
}

// Lookup returns the rule registered for id.
func Lookup(id RuleID) (Rule, bool) {
	for _, r := range rules {
		if r.ID == id {
			return r, true
		}
	}

	return Rule{}, false
}
