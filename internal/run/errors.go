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
	"errors"
	"fmt"

	"golang.org/x/tools/go/analysis"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// AnalysisError is a recovered failure in the analysis of a single function literal.
type AnalysisError struct {
	Value any
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("capture analysis failed: %v", e.Value)
}

// Unwrap returns the recovered value if it is an error.
func (e *AnalysisError) Unwrap() error {
	err, _ := e.Value.(error)

	return err
}

// internalCategory is the diagnostic category of internal errors.
const internalCategory = "internal"

// reportInternalError reports an inconsistency in the input from the driver,
// as opposed to a finding in the analyzed code.
func reportInternalError(p *analysis.Pass, rng analysis.Range, format string, args ...any) {
	msg := fmt.Appendf([]byte("Internal Error: "), format, args...)

	p.Report(analysis.Diagnostic{Pos: rng.Pos(), End: rng.End(), Category: internalCategory, Message: string(msg)})
}
