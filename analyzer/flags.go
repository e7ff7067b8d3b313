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
	"flag"

	"fillmore-labs.com/capturealloc/internal/config"
	"fillmore-labs.com/capturealloc/internal/run"
)

// kindUsage describes the flag of each function literal flavor.
var kindUsage = [...]struct {
	kind  config.Kind
	usage string
}{
	{config.GoStmt, "analyze function literals started as goroutines"},
	{config.Defer, "analyze deferred function literals"},
	{config.CallArg, "analyze function literals passed as call arguments"},
	{config.Assign, "analyze function literals bound to variables"},
	{config.Other, "analyze function literals in other positions"},
}

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newBoolValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")

	for _, k := range kindUsage {
		flags.Var(newBoolValue(&r.Kinds, k.kind), k.kind.String(), k.usage)
	}

	flags.IntVar(&r.Concurrency, "concurrency", r.Concurrency, "maximum number of function literals analyzed in parallel (0 for GOMAXPROCS)")
}
