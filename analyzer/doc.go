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

// Package analyzer implements the capturealloc static analysis pass.
//
// # Overview
//
// A function literal referencing variables of its enclosing function captures them.
// The compiler synthesizes a closure object holding the captured variables, and
// when the literal escapes, the captured variables move to the heap. capturealloc
// makes these hidden allocations visible.
//
// # Example
//
//	func process(items []Item, limit int) {
//	    for _, item := range items {
//	        go func() {           // captures 'item' and 'limit'
//	            handle(item, limit)
//	        }()
//	    }
//	}
//
// Reports a capture frame for 'item' and 'limit' in the function scope, and a
// function literal allocating a frame on every loop iteration.
//
// # Rules
//
// Every diagnostic carries its rule ID as category and ends with "(ca:<id>)":
//
//   - frame: the capture frame allocation, reported where the variables of the
//     outermost scope holding a captured variable come to life.
//   - capture: the function literal and the variables it captures. Literals in
//     the body of a for or range statement allocate on every loop iteration.
//   - generic: a capturing literal in a generic function. The frame is allocated
//     for every instantiation, consider extracting the literal into a non-generic
//     helper.
//
// # Flavors
//
// Function literals are grouped by the syntax they appear in: started as goroutines
// (-go), deferred (-defer), passed as call arguments (-arg), bound to variables
// (-assign) and all other positions (-other). Every flavor is analyzed by default.
//
// # Suppression
//
// Diagnostics are suppressed by a //nolint:capturealloc comment on the line of a
// function literal, or as the last line of the doc comment of a function or file.
// Generated files are skipped unless -generated is set.
package analyzer
